package hqc

import "runtime"

// zeroizeBytes overwrites buf with zeros. It calls runtime.KeepAlive
// after the write so the compiler cannot prove the store is dead and
// elide it, which is the usual way a naive "clear the secret buffer"
// loop gets optimized away.
func zeroizeBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}

// zeroizeWords overwrites a uint64 word slice (a bitvec.Vec's backing
// array) with zeros, the PolyDense analogue of zeroizeBytes.
func zeroizeWords(buf []uint64) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}
