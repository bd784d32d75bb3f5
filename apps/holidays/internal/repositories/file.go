package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"holidays.xdoubleu.com/apps/holidays/internal/models"
)

type holidayRecord struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

type holidayFile struct {
	Holidays *[]holidayRecord `json:"holidays"`
}

type FileRepository struct {
	logger *slog.Logger
}

// Load reads every holiday stored at path. A single bad record fails the
// whole load.
func (repo *FileRepository) Load(path string) ([]models.Holiday, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading holidays from %s: %w", path, err)
	}

	var file holidayFile
	if err = json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing holidays from %s: %w", path, err)
	}

	if file.Holidays == nil {
		return nil, fmt.Errorf("parsing holidays from %s: missing \"holidays\" list", path)
	}

	holidays := make([]models.Holiday, 0, len(*file.Holidays))
	for i, record := range *file.Holidays {
		var holiday models.Holiday
		holiday, err = models.ParseHoliday(record.Name, record.Date)
		if err != nil {
			return nil, fmt.Errorf("parsing holiday %d from %s: %w", i, path, err)
		}

		holidays = append(holidays, holiday)
	}

	repo.logger.Debug(fmt.Sprintf("read %d holidays from %s", len(holidays), path))

	return holidays, nil
}

// Save overwrites path with holidays. The data is written to a temporary
// file first so an existing file survives a failed write.
func (repo *FileRepository) Save(path string, holidays []models.Holiday) error {
	records := make([]holidayRecord, 0, len(holidays))
	for _, holiday := range holidays {
		records = append(records, holidayRecord{
			Name: holiday.Name(),
			Date: holiday.Date().Format(models.DateFormat),
		})
	}

	data, err := json.MarshalIndent(holidayFile{Holidays: &records}, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("saving holidays to %s: %w", path, err)
	}

	_, err = tmp.Write(append(data, '\n'))
	err = errors.Join(err, tmp.Close())
	if err == nil {
		err = os.Rename(tmp.Name(), path)
	}

	if err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("saving holidays to %s: %w", path, err)
	}

	repo.logger.Debug(fmt.Sprintf("wrote %d holidays to %s", len(holidays), path))

	return nil
}
