// Package sl содержит мелкие помощники для структурированного
// логирования через slog.
package sl

import "log/slog"

// Err оборачивает ошибку в атрибут с ключом "error", чтобы все записи
// об ошибках в логе выглядели одинаково.
//
//	log.Error("failed to create session", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.String("error", err.Error())
}
