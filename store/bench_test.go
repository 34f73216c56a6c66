package store_test

import (
	"testing"

	"github.com/YuriiPovkh/recall/store"
)

func BenchmarkPutUpdateInPlace(b *testing.B) {
	s, err := store.New[Order](recordLength, maxRecords)
	if err != nil {
		b.Fatal(err)
	}
	tc := orderTranscoder{}
	order := orderOf(orderID)
	if err := s.Put(tc, order); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		order.Price = int64(i)
		if err := s.Put(tc, order); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLoad(b *testing.B) {
	s, err := store.New[Order](recordLength, maxRecords)
	if err != nil {
		b.Fatal(err)
	}
	tc := orderTranscoder{}
	for i := int64(0); i < maxRecords; i++ {
		if err := s.Put(tc, orderOf(i)); err != nil {
			b.Fatal(err)
		}
	}
	var container Order
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !s.Load(int64(i%maxRecords), tc, &container) {
			b.Fatal("key missing")
		}
	}
}
