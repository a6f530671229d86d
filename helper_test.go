package hisab

// tk is a helper for tests to create an amount from a const.
func tk(v float64) Amount { return A(v) }

// ptr is a helper for tests to build partial updates.
func ptr[T any](v T) *T { return &v }

// memStorage is an in-memory Storage for store round-trip tests.
type memStorage struct {
	data  []byte
	saves int
}

func (m *memStorage) Load() ([]byte, error) { return m.data, nil }

func (m *memStorage) Save(data []byte) error {
	m.data = append([]byte(nil), data...)
	m.saves++
	return nil
}
