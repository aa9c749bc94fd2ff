package storage

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"rift-server/internal/core/types"
	"rift-server/internal/domain"
)

// ErrInvalidMagic - файл не является архивом матча.
var ErrInvalidMagic = errors.New("invalid magic")

// Load читает архив по пути.
func (s *ArchiveService) Load(path string) (*MatchArchive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readBinary(bufio.NewReader(f))
}

func readBinary(r io.Reader) (*MatchArchive, error) {
	// 1. Заголовок
	var header ArchiveFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if string(header.Magic[:]) != MagicHeader {
		return nil, ErrInvalidMagic
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version1)
	}
	if header.EventCount < 0 {
		return nil, fmt.Errorf("corrupt event count: %d", header.EventCount)
	}

	a := &MatchArchive{
		Seed:      header.Seed,
		Timestamp: header.Timestamp,
		TickCount: int(header.TickCount),
		Events:    make([]domain.Event, 0, header.EventCount),
	}

	// 2. Метаданные
	meta := make([]byte, header.MetaLen)
	if _, err := io.ReadFull(r, meta); err != nil {
		return nil, fmt.Errorf("failed to read meta: %w", err)
	}
	if err := json.Unmarshal(meta, &a.Meta); err != nil {
		return nil, fmt.Errorf("failed to parse meta: %w", err)
	}

	// 3. События
	for i := 0; i < int(header.EventCount); i++ {
		var eh EventHeader
		if err := binary.Read(r, binary.LittleEndian, &eh); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}

		text := make([]byte, eh.TextLen)
		if _, err := io.ReadFull(r, text); err != nil {
			return nil, fmt.Errorf("event %d text: %w", i, err)
		}

		a.Events = append(a.Events, domain.Event{
			Minute:   eh.Minute,
			Type:     domain.EventType(eh.Type),
			Team:     domain.Team(eh.Team),
			ActorID:  types.EntityID(eh.ActorID),
			TargetID: types.EntityID(eh.TargetID),
			Solo:     eh.Solo == 1,
			Text:     string(text),
		})
	}

	return a, nil
}
