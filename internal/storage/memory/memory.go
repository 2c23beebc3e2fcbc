// Package memory реализует хранилище данных в памяти процесса
// для управления пользователями, консультациями и записями прогресса.
// Каждый вид записей получает собственный монотонно растущий числовой
// идентификатор; идентификаторы никогда не переиспользуются в рамках
// работающего процесса.
//
// Хранилище конструируется явно при старте процесса и передаётся
// в слой маршрутов, глобального состояния нет.
package memory

import (
	"sync"

	"github.com/magabrotheeeer/fitcoach/internal/models"
)

// Store инкапсулирует коллекции в памяти и счётчики идентификаторов.
// Все операции выполняются под одним мьютексом, поэтому каскадное
// удаление пользователя атомарно относительно других операций хранилища.
type Store struct {
	mu sync.RWMutex

	users         map[int]models.User
	consultations map[int]models.Consultation
	progress      map[int]models.Progress

	nextUserID         int
	nextConsultationID int
	nextProgressID     int
}

// New создает пустое хранилище с начальными значениями счётчиков.
func New() *Store {
	return &Store{
		users:              make(map[int]models.User),
		consultations:      make(map[int]models.Consultation),
		progress:           make(map[int]models.Progress),
		nextUserID:         1,
		nextConsultationID: 1,
		nextProgressID:     1,
	}
}
