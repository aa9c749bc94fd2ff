package storage

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
)

// ArchiveService пишет и читает архивы матчей в каталоге SaveDir.
type ArchiveService struct {
	SaveDir string
}

func NewArchiveService(dir string) (*ArchiveService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create archive dir: %w", err)
	}
	return &ArchiveService{SaveDir: dir}, nil
}

// Save пишет архив и возвращает путь к файлу.
func (s *ArchiveService) Save(a *MatchArchive) (string, error) {
	filename := fmt.Sprintf("match_%s_%d%s", a.Meta.Summary.MatchID, a.Seed, FileExt)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := writeBinary(w, a); err != nil {
		return "", err
	}
	if err := w.Flush(); err != nil {
		return "", err
	}
	return path, nil
}

func writeBinary(w io.Writer, a *MatchArchive) error {
	meta, err := json.Marshal(a.Meta)
	if err != nil {
		return fmt.Errorf("failed to marshal meta: %w", err)
	}
	if len(a.Events) > math.MaxInt32 {
		return fmt.Errorf("too many events: %d", len(a.Events))
	}

	// 1. Заголовок
	header := ArchiveFileHeader{
		Version:    Version1,
		Seed:       a.Seed,
		Timestamp:  a.Timestamp,
		TickCount:  int32(a.TickCount),
		EventCount: int32(len(a.Events)),
		MetaLen:    uint32(len(meta)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	// 2. Метаданные
	if _, err := w.Write(meta); err != nil {
		return fmt.Errorf("failed to write meta: %w", err)
	}

	// 3. События
	for _, ev := range a.Events {
		text := []byte(ev.Text)
		if len(text) > math.MaxUint16 {
			return fmt.Errorf("event text too long: %d", len(text))
		}

		eh := EventHeader{
			Minute:   ev.Minute,
			ActorID:  uint64(ev.ActorID),
			TargetID: uint64(ev.TargetID),
			Type:     uint8(ev.Type),
			Team:     uint8(ev.Team),
			TextLen:  uint16(len(text)),
		}
		if ev.Solo {
			eh.Solo = 1
		}

		if err := binary.Write(w, binary.LittleEndian, &eh); err != nil {
			return err
		}
		if _, err := w.Write(text); err != nil {
			return err
		}
	}

	return nil
}
