package internal

type DoneChan chan struct{}

type DoneFunc func() DoneChan
