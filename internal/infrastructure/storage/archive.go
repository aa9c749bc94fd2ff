package storage

import (
	"rift-server/internal/domain"
)

const (
	MagicHeader string = `RFMA` // 4 байта
	Version1    uint32 = 1

	// FileExt - расширение архива матча.
	FileExt = ".rfma"
)

// ArchiveFileHeader - заголовок файла. Только числа и массивы,
// чтобы binary.Write писал его одной командой.
type ArchiveFileHeader struct {
	Magic      [4]byte // 4 байта
	Version    uint32  // 4 байта
	Seed       int64   // 8 байт
	Timestamp  int64   // 8 байт
	TickCount  int32   // 4 байта
	EventCount int32   // 4 байта
	MetaLen    uint32  // 4 байта
}

// EventHeader - фиксированная часть записи события.
type EventHeader struct {
	Minute   float64 // 8
	ActorID  uint64  // 8
	TargetID uint64  // 8
	Type     uint8   // 1
	Team     uint8   // 1
	Solo     uint8   // 1
	_        uint8   // 1
	TextLen  uint16  // 2
}

// ArchiveMeta - все, что нужно для повтора матча: составы, результат
// резолвера и итоговая сводка. Хранится как JSON после заголовка.
type ArchiveMeta struct {
	Blue        domain.Roster       `json:"blue"`
	Red         domain.Roster       `json:"red"`
	Outcome     domain.MatchOutcome `json:"outcome"`
	TickMinutes float64             `json:"tickMinutes"`
	// SuddenDeath - минута добивания базы; 0 в старых архивах.
	SuddenDeath float64             `json:"suddenDeath,omitempty"`
	// Balance - ревизия баланса, которой записан архив.
	Balance int                 `json:"balance,omitempty"`
	Summary domain.MatchSummary `json:"summary"`
}

// MatchArchive - завершенный матч в памяти.
type MatchArchive struct {
	Seed      int64
	Timestamp int64
	TickCount int
	Meta      ArchiveMeta
	Events    []domain.Event
}
