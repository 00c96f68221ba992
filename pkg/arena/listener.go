package arena

// Called from the worker goroutines, implementations must be safe for
// concurrent use
type Listener interface {
	OnFinishedGame(record GameRecord)
	OnFinishedWork(workerID int, games int)
}

type NopListener struct{}

func (NopListener) OnFinishedGame(GameRecord) {}

func (NopListener) OnFinishedWork(int, int) {}

// Adapts plain functions to the Listener interface, nil functions are skipped
type ListenerFuncs struct {
	FinishedGame func(record GameRecord)
	FinishedWork func(workerID int, games int)
}

func (l ListenerFuncs) OnFinishedGame(record GameRecord) {
	if l.FinishedGame != nil {
		l.FinishedGame(record)
	}
}

func (l ListenerFuncs) OnFinishedWork(workerID int, games int) {
	if l.FinishedWork != nil {
		l.FinishedWork(workerID, games)
	}
}
