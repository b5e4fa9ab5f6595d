package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pivolan/address_stats/domain/models"
	"github.com/pivolan/go_utils"
	"go.uber.org/zap"
)

var (
	// ErrNoPath is returned when the user gives up on entering a path.
	ErrNoPath               = errors.New("no path selected")
	ErrAttemptsExceeded     = errors.New("too many path attempts")
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	ErrFileNotFound         = errors.New("file not found")
)

var archiveSuffixes = []string{".gz", ".lz4"}

const zipSuffix = ".zip"

// Formats lists the data formats a variant reads, whether plain or archived.
func Formats(variant models.Variant) []models.InputFormat {
	if variant == models.VariantLegacy {
		return []models.InputFormat{models.FormatCSV}
	}
	return []models.InputFormat{models.FormatCSV, models.FormatXML}
}

// Extensions возвращает список допустимых расширений для варианта программы
func Extensions(variant models.Variant, allowArchives bool) []string {
	var base []string
	for _, f := range Formats(variant) {
		base = append(base, string(f))
	}
	if !allowArchives {
		return base
	}
	result := append([]string{}, base...)
	for _, ext := range base {
		for _, suffix := range archiveSuffixes {
			result = append(result, ext+suffix)
		}
	}
	return append(result, zipSuffix)
}

// fileExtension returns the lower-cased extension including one archive suffix,
// e.g. ".csv", ".xml.gz", ".zip".
func fileExtension(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if go_utils.InArray(ext, archiveSuffixes) {
		inner := strings.ToLower(filepath.Ext(strings.TrimSuffix(path, filepath.Ext(path))))
		return inner + ext
	}
	return ext
}

// CheckPath validates a path without asking anything.
func CheckPath(path string, accepted []string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: %w", path, ErrFileNotFound)
		}
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory: %w", path, ErrFileNotFound)
	}
	if !go_utils.InArray(fileExtension(path), accepted) {
		return fmt.Errorf("%s: %w", path, ErrUnsupportedExtension)
	}
	return nil
}

type PathResolver struct {
	console     *Console
	accepted    []string
	maxAttempts int
	logger      *zap.Logger
}

func NewPathResolver(console *Console, accepted []string, maxAttempts int, logger *zap.Logger) *PathResolver {
	return &PathResolver{console: console, accepted: accepted, maxAttempts: maxAttempts, logger: logger}
}

// Resolve спрашивает путь, пока не будет введён существующий файл с допустимым
// расширением или пока пользователь не откажется от поиска.
func (r *PathResolver) Resolve() (string, error) {
	attempts := 0
	for {
		if r.maxAttempts > 0 && attempts >= r.maxAttempts {
			r.logger.Warn("path attempts exhausted", zap.Int("attempts", attempts))
			return "", ErrAttemptsExceeded
		}
		path, err := r.console.Ask("[*]", "Введите путь до файла: ")
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		eof := err != nil
		if path == "" {
			if eof {
				return "", ErrNoPath
			}
			continue
		}
		attempts++

		err = CheckPath(path, r.accepted)
		switch {
		case err == nil:
			r.logger.Debug("path resolved", zap.String("path", path))
			return path, nil
		case errors.Is(err, ErrUnsupportedExtension):
			r.logger.Debug("rejected extension", zap.String("path", path))
			r.console.Error("Неверное расширение файла. Допустимые расширения: %s", strings.Join(r.accepted, ", "))
		case errors.Is(err, ErrFileNotFound):
			if eof {
				return "", ErrNoPath
			}
			next, err := r.askRetry()
			if err != nil || !next {
				return "", err
			}
		default:
			r.console.Error("Не удалось открыть файл: %v", err)
		}
		if eof {
			return "", ErrNoPath
		}
	}
}

// askRetry returns true when the user wants another attempt. Unknown answers
// also lead back to the path prompt.
func (r *PathResolver) askRetry() (bool, error) {
	r.console.Error("К сожалению файл не был обнаружен по указанному пути")
	answer, err := r.console.Ask("[?]", "Вы хотите продолжить поиск?(y/n): ")
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	switch answer {
	case "y":
		return true, nil
	case "n":
		return false, ErrNoPath
	}
	if err != nil {
		return false, ErrNoPath
	}
	r.console.Error("К сожалению, вы ввели неверный символ, поэтому вам снова будет предложено ввести путь до файла!")
	return true, nil
}
