// Package packed читает выгрузку расписания: одно значение на строку,
// запись занимает F строк плюс одну пустую.
package packed

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// UnpackFunc собирает одну запись из полей чанка
type UnpackFunc[T any] func(f *Fields) (T, error)

// Fields - курсор по значениям одного чанка
type Fields struct {
	values []string
	pos    int
}

func (f *Fields) Next(name string) (string, error) {
	if f.pos >= len(f.values) {
		return "", fmt.Errorf("missing value for %s", name)
	}
	value := f.values[f.pos]
	f.pos++
	return value, nil
}

func (f *Fields) Int(name string) (int64, error) {
	value, err := f.Next(name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, value, err)
	}
	return n, nil
}

// rest - всё, что осталось после последнего поля
func (f *Fields) rest() []string {
	if f.pos >= len(f.values) {
		return nil
	}
	return f.values[f.pos:]
}

// Unpack режет lines на чанки по fields+1 строк. Чанк с ошибкой
// логируется и пропускается, остальные загружаются.
// Второе значение - число пропущенных чанков.
func Unpack[T any](lines []string, fields int, kind string, fn UnpackFunc[T], log *zap.Logger) ([]T, int) {
	size := fields + 1
	unpacked := make([]T, 0, len(lines)/size+1)
	skipped := 0

	for start := 0; start < len(lines); start += size {
		end := min(start+size, len(lines))
		chunk := &Fields{values: lines[start:end]}

		record, err := fn(chunk)
		if err != nil {
			log.Error("failed to unpack record",
				zap.String("kind", kind),
				zap.Int("line", start+1),
				zap.Error(err),
			)
			skipped++
			continue
		}

		for _, extra := range chunk.rest() {
			if extra != "" {
				log.Warn("found extra value while unpacking",
					zap.String("kind", kind),
					zap.Int("line", start+1),
					zap.String("value", extra),
				)
			}
		}

		unpacked = append(unpacked, record)
	}

	return unpacked, skipped
}

// UnpackFile читает файл целиком. Ошибка только если файл не прочитан.
func UnpackFile[T any](path string, fields int, kind string, fn UnpackFunc[T], log *zap.Logger) ([]T, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("read %s: %w", path, err)
	}
	records, skipped := Unpack(Lines(string(data)), fields, kind, fn, log)
	return records, skipped, nil
}

// Lines делит текст на строки так же, как это делает str.lines():
// завершающий перевод строки не даёт пустой строки в конце.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
