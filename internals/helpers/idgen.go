// file: internals/helpers/idgen.go
package helper

import "github.com/google/uuid"

// NewID mengembalikan id unik untuk semua entitas.
// Sebelumnya pakai timestamp (Date.now) — rawan tabrakan kalau dua entitas
// dibuat di milidetik yang sama, jadi diganti UUID v4.
func NewID() string {
	return uuid.NewString()
}
