package store_test

import (
	"github.com/YuriiPovkh/recall/buffer"
	"github.com/YuriiPovkh/recall/store"
)

// Order is the example domain record used throughout the store tests. It is
// deliberately not part of the store contract; the store only ever sees it
// through the transcoder below.
type Order struct {
	ID                  int64
	CreatedEpochSeconds int64
	Price               int64
	Quantity            uint32
	Symbol              string
}

func orderOf(id int64) Order {
	return Order{
		ID:                  id,
		CreatedEpochSeconds: 1546300800,
		Price:               2057,
		Quantity:            100,
		Symbol:              "ACME",
	}
}

// orderTranscoder encodes an Order into a slot payload:
//
//	[id:8][created:8][price:8][quantity:4][symLen:4][symbol bytes]
//
// Worst case 32 + maxSymbolBytes, well inside a 64-byte slot.
type orderTranscoder struct{}

func (orderTranscoder) Key(source Order) int64 { return source.ID }

func (orderTranscoder) Encode(dst buffer.Buffer, offset int, value Order) {
	dst.PutUint64(offset, uint64(value.ID))
	dst.PutUint64(offset+8, uint64(value.CreatedEpochSeconds))
	dst.PutUint64(offset+16, uint64(value.Price))
	dst.PutUint32(offset+24, value.Quantity)
	dst.PutUint32(offset+28, uint32(len(value.Symbol)))
	for i := 0; i < len(value.Symbol); i++ {
		dst.PutByte(offset+32+i, value.Symbol[i])
	}
}

func (orderTranscoder) Decode(src buffer.Buffer, offset int, container *Order) {
	container.ID = int64(src.Uint64(offset))
	container.CreatedEpochSeconds = int64(src.Uint64(offset + 8))
	container.Price = int64(src.Uint64(offset + 16))
	container.Quantity = src.Uint32(offset + 24)
	n := int(src.Uint32(offset + 28))
	sym := make([]byte, n)
	for i := 0; i < n; i++ {
		sym[i] = src.ByteAt(offset + 32 + i)
	}
	container.Symbol = string(sym)
}

var _ store.Transcoder[Order] = orderTranscoder{}
