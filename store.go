package fintrack

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// maxLineSize bounds the length of a stored line.
const maxLineSize = 1 << 20

// Store is the file backed, append-only log of transactions.
//
// The file holds one encoded transaction per line, oldest first. It is only
// ever appended to. A single writer is assumed: there is no locking.
type Store struct {
	path string
	log  zerolog.Logger
}

// NewStore returns a store backed by the file at path. Diagnostics (skipped
// lines, file creation) are reported to logger.
func NewStore(path string, logger zerolog.Logger) *Store {
	return &Store{
		path: path,
		log:  logger.With().Str("ledger", path).Logger(),
	}
}

// Path returns the location of the backing file.
func (s *Store) Path() string { return s.path }

// ensure creates the backing file, and its parent directories, if missing.
func (s *Store) ensure() (created bool, err error) {
	if _, err := os.Stat(s.path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("cannot stat ledger file %q: %w", s.path, err)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return false, fmt.Errorf("cannot create ledger directory %q: %w", dir, err)
		}
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return false, fmt.Errorf("cannot create ledger file %q: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("cannot create ledger file %q: %w", s.path, err)
	}
	s.log.Info().Msg("created empty ledger file")
	return true, nil
}

// LoadAll reads every transaction of the store, in file order.
//
// A missing file is created empty. Blank lines are ignored and lines that do
// not decode are logged and skipped, so that one corrupted record does not
// hide the others.
//
// LoadAll always returns a usable ledger: on I/O errors it holds whatever could
// be read, and the error is returned alongside.
func (s *Store) LoadAll() (*Ledger, error) {
	ledger := NewLedger()

	created, err := s.ensure()
	if err != nil {
		s.log.Error().Err(err).Msg("cannot initialize ledger")
		return ledger, err
	}
	if created {
		return ledger, nil
	}

	f, err := os.Open(s.path)
	if err != nil {
		err = fmt.Errorf("cannot open %q for reading: %w", s.path, err)
		s.log.Error().Err(err).Msg("cannot load ledger")
		return ledger, err
	}
	defer f.Close()

	if err := s.decode(f, ledger); err != nil {
		err = fmt.Errorf("error reading %q: %w", s.path, err)
		s.log.Error().Err(err).Int("loaded", ledger.Len()).Msg("ledger partially loaded")
		return ledger, err
	}
	s.log.Debug().Int("transactions", ledger.Len()).Msg("ledger loaded")
	return ledger, nil
}

// decode appends to ledger every valid line read from r. Lines longer than
// maxLineSize are skipped without being held in memory.
func (s *Store) decode(r io.Reader, ledger *Ledger) error {
	br := bufio.NewReader(r)
	var buf []byte
	tooLong := false

	i := 0
	for {
		chunk, isPrefix, err := br.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if !tooLong {
			buf = append(buf, chunk...)
			tooLong = len(buf) > maxLineSize
		}
		if isPrefix {
			continue
		}
		i++
		line, skip := string(buf), tooLong
		buf, tooLong = buf[:0], false

		if skip {
			s.log.Warn().Err(fmt.Errorf("%w: longer than %d bytes", ErrMalformedLine, maxLineSize)).
				Int("line", i).Msg("skipping invalid transaction line")
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue // Skip empty lines
		}
		tx, err := DecodeTransaction(line)
		if err != nil {
			s.log.Warn().Err(err).Int("line", i).Msg("skipping invalid transaction line")
			continue
		}
		ledger.Append(tx)
	}
}

// Append writes tx at the end of the store. Existing content is never read
// nor rewritten.
func (s *Store) Append(tx Transaction) error {
	if _, err := s.ensure(); err != nil {
		return err
	}
	// Open the file in append mode, creating it if it doesn't exist.
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("cannot open %q for appending: %w", s.path, err)
	}
	if _, err := io.WriteString(f, tx.Encode()+"\n"); err != nil {
		f.Close()
		return fmt.Errorf("failed to write transaction to %q: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write transaction to %q: %w", s.path, err)
	}
	s.log.Debug().Str("transaction", tx.Encode()).Msg("transaction appended")
	return nil
}
