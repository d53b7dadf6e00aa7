package sparse

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Bitmap returns a roaring bitmap of the live public indices.
//
// Bitmaps of several stores sharing an index space (e.g. component stores
// keyed by entity) can be combined with roaring.And / roaring.Or to find the
// indices live in all or any of them.
func (v *VecOf[T, D, I]) Bitmap() *roaring.Bitmap {
	return keysBitmap(v.Keys())
}

// Bitmap returns a roaring bitmap of the live public indices.
func (s *SetOf[T, D, I]) Bitmap() *roaring.Bitmap {
	return keysBitmap(s.Keys())
}

func keysBitmap(keys iter.Seq[int]) *roaring.Bitmap {
	rb := roaring.New()
	for n := range keys {
		rb.Add(uint32(n))
	}
	return rb
}
