package types

import (
	"fmt"
	"strconv"

	"rift-server/internal/core/types/enums"
)

// EntityID - 64-битный идентификатор сущности матча.
//
// EntityID является value-type: его дёшево копировать, сравнивать
// и использовать как ключ map в буферах урона.
//
// Формат битов (от старших к младшим):
//
//	[ reserved (16) | Kind (8) | Team (8) | Index (32) ]
//
// Где:
//   - Kind - категория сущности (чемпион, миньон, строение, лагерь, объект)
//   - Team - сторона (0 - синие, 1 - красные, 2 - нейтралы)
//   - Index - порядковый номер внутри категории и стороны
//
// Миньоны создаются каждую волну, поэтому Index у них растёт монотонно
// и никогда не переиспользуется в пределах матча.
type EntityID uint64

// NilEntityID - нулевой идентификатор, аналог nil.
//
// Используется, когда у миньона нет цели или атакующий неизвестен.
const NilEntityID EntityID = 0

const (
	// bitsIndex - до ~4.29 млрд сущностей одной категории.
	bitsIndex = 32

	// bitsTeam - сторона; реально используется 2 бита, остальное запас.
	bitsTeam = 8

	// bitsKind - категория сущности (enums.EntityKind).
	bitsKind = 8

	shiftTeam = bitsIndex
	shiftKind = bitsIndex + bitsTeam

	maskIndex = (1 << bitsIndex) - 1
	maskTeam  = (1 << bitsTeam) - 1
	maskKind  = (1 << bitsKind) - 1
)

// PackEntityID собирает EntityID из составных частей.
//
// Проверок диапазонов нет: team и kind должны помещаться в 8 бит.
func PackEntityID(kind enums.EntityKind, team uint8, index uint32) EntityID {
	return EntityID(
		(uint64(kind) << shiftKind) |
			(uint64(team) << shiftTeam) |
			uint64(index),
	)
}

// Index возвращает порядковый номер сущности.
func (id EntityID) Index() uint32 {
	return uint32(id & maskIndex)
}

// Team возвращает сторону, закодированную в идентификаторе.
func (id EntityID) Team() uint8 {
	return uint8((id >> shiftTeam) & maskTeam)
}

// Kind возвращает категорию сущности.
func (id EntityID) Kind() enums.EntityKind {
	return enums.EntityKind((id >> shiftKind) & maskKind)
}

// IsNil проверяет, является ли идентификатор нулевым.
func (id EntityID) IsNil() bool {
	return id == NilEntityID
}

// String возвращает человекочитаемое представление для логов.
func (id EntityID) String() string {
	if id.IsNil() {
		return "<nil>"
	}

	return fmt.Sprintf("[%s team=%d idx=%d]", id.Kind(), id.Team(), id.Index())
}

// MarshalJSON сериализует EntityID строкой: JS теряет точность на uint64.
func (id EntityID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(id), 10) + `"`), nil
}

// UnmarshalJSON принимает как строковое, так и числовое представление.
func (id *EntityID) UnmarshalJSON(data []byte) error {
	s := string(data)

	if len(s) > 1 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}

	if s == "" {
		*id = NilEntityID
		return nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}

	*id = EntityID(v)
	return nil
}
