package fintrack

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/fintrack/date"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore returns a store on path, and the buffer its logs are written to.
func newTestStore(path string) (*Store, *bytes.Buffer) {
	var logs bytes.Buffer
	return NewStore(path, zerolog.New(&logs)), &logs
}

func TestStore_LoadAll_CreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "nested", "transactions.csv")
	store, _ := newTestStore(path)

	ledger, err := store.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, 0, ledger.Len())

	info, err := os.Stat(path)
	require.NoError(t, err, "LoadAll() should have created the ledger file")
	assert.Equal(t, int64(0), info.Size())
}

func TestStore_LoadAll_SkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	content := "2025-03-10|12:30:23|office chair|Amazon|-169.99\n" +
		"\n" +
		"2025-03-10|12:30:23|broken\n" +
		"   \n" +
		"2025-03-11|08:00:00|salary|ACME|2500.00\n" +
		"2025-13-11|08:00:00|bad date|ACME|1.00\n" +
		"2025-03-12|09:15:00|truncated|Sho"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	store, logs := newTestStore(path)

	ledger, err := store.LoadAll()
	require.NoError(t, err)

	got := ledger.Transactions()
	require.Len(t, got, 2)
	assert.Equal(t, "2025-03-10|12:30:23|office chair|Amazon|-169.99", got[0].Encode())
	assert.Equal(t, "2025-03-11|08:00:00|salary|ACME|2500.00", got[1].Encode())

	assert.Contains(t, logs.String(), "skipping invalid transaction line")
	assert.Contains(t, logs.String(), `"line":3`)
	assert.Contains(t, logs.String(), `"line":6`)
	assert.Contains(t, logs.String(), `"line":7`)
}

func TestStore_LoadAll_OneValidOneShortLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	content := "2025-03-10|12:30:23|office chair|Amazon|-169.99\n2025-03-10|12:30:23|Amazon\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	store, _ := newTestStore(path)

	ledger, err := store.LoadAll()
	require.NoError(t, err)
	want := MustNewTransaction(date.MustParse("2025-03-10"), date.MustParseClock("12:30:23"), "office chair", "Amazon", MustParseAmount("-169.99"))
	require.Equal(t, 1, ledger.Len())
	assert.True(t, ledger.Transactions()[0].Equal(want))
}

func TestStore_LoadAll_SkipsOversizedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	content := "2025-03-10|12:30:23|office chair|Amazon|-169.99\n" +
		strings.Repeat("x", 2*maxLineSize) + "\n" +
		"2025-03-11|08:00:00|salary|ACME|2500.00\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	store, logs := newTestStore(path)

	ledger, err := store.LoadAll()
	require.NoError(t, err)

	got := ledger.Transactions()
	require.Len(t, got, 2)
	assert.Equal(t, "2025-03-10|12:30:23|office chair|Amazon|-169.99", got[0].Encode())
	assert.Equal(t, "2025-03-11|08:00:00|salary|ACME|2500.00", got[1].Encode())
	assert.Contains(t, logs.String(), `"line":2`)
	assert.Contains(t, logs.String(), "longer than")
}

func TestStore_LoadAll_CRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	require.NoError(t, os.WriteFile(path, []byte("2025-03-11|08:00:00|salary|ACME|2500.00\r\n"), 0644))
	store, _ := newTestStore(path)

	ledger, err := store.LoadAll()
	require.NoError(t, err)
	require.Equal(t, 1, ledger.Len())
	assert.Equal(t, "2500.00", ledger.Transactions()[0].Amount().String())
}

func TestStore_AppendThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger", "transactions.csv")
	store, _ := newTestStore(path)

	day := date.MustParse("2025-03-10")
	var want []Transaction
	for i, amount := range []string{"100", "-50", "25.5", "-0.99", "3000"} {
		tx := MustNewTransaction(day, date.NewClock(9, i, 0), "entry", "vendor", MustParseAmount(amount))
		require.NoError(t, store.Append(tx))
		want = append(want, tx)
	}

	ledger, err := store.LoadAll()
	require.NoError(t, err)
	got := ledger.Transactions()
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, got[i].Equal(want[i]), "transaction %d: got %v, want %v", i, got[i], want[i])
	}
}

func TestStore_AppendPreservesContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	// Existing content, including a line this version would not write.
	existing := "2025-01-01|00:00:00|opening|bank|10\nnot a transaction\n"
	require.NoError(t, os.WriteFile(path, []byte(existing), 0644))
	store, _ := newTestStore(path)

	tx := MustNewTransaction(date.MustParse("2025-03-10"), date.MustParseClock("12:30:23"), "office chair", "Amazon", MustParseAmount("-169.99"))
	require.NoError(t, store.Append(tx))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, existing+"2025-03-10|12:30:23|office chair|Amazon|-169.99\n", string(content))
}

func TestStore_Errors(t *testing.T) {
	// A regular file where the parent directory should be.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	path := filepath.Join(blocker, "transactions.csv")
	store, logs := newTestStore(path)

	ledger, err := store.LoadAll()
	assert.Error(t, err)
	require.NotNil(t, ledger)
	assert.Equal(t, 0, ledger.Len())
	assert.Contains(t, logs.String(), `"level":"error"`)

	tx := MustNewTransaction(date.MustParse("2025-03-10"), date.MustParseClock("12:30:23"), "d", "v", A(1))
	assert.Error(t, store.Append(tx))
}
