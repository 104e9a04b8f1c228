package solver

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"
)

// Source — источник равномерных чисел из [0, 1).
// *rand.Rand из math/rand и math/rand/v2 тоже подходит.
type Source interface {
	Float64() float64
}

// byteSource превращает поток байтов в числа из [0, 1):
// берутся старшие 53 бита каждого 8-байтового слова.
type byteSource struct {
	r   io.Reader
	buf [8]byte
}

func (s *byteSource) Float64() float64 {
	if _, err := io.ReadFull(s.r, s.buf[:]); err != nil {
		// оба используемых потока бесконечны, ошибка здесь означает сломанное окружение
		panic(fmt.Sprintf("solver: random source: %v", err))
	}
	return float64(binary.LittleEndian.Uint64(s.buf[:])>>11) / (1 << 53)
}

// NewSeededSource возвращает детерминированный поток, ключом которого служит seed.
// Два источника с одинаковым seed выдают одинаковые последовательности.
func NewSeededSource(seed uint32) Source {
	var key [4]byte
	binary.LittleEndian.PutUint32(key[:], seed)
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key[:])
	if err != nil {
		// ключ из 4 байт всегда допустим
		panic(err)
	}
	return &byteSource{r: xof}
}

// NewEntropySource возвращает невоспроизводимый поток на основе crypto/rand
func NewEntropySource() Source {
	return &byteSource{r: rand.Reader}
}
