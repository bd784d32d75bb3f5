package repositories

import "log/slog"

type Repositories struct {
	Holidays *FileRepository
}

func New(logger *slog.Logger) *Repositories {
	return &Repositories{
		Holidays: &FileRepository{logger: logger},
	}
}
