// Command hqc-kat replays the module's fixed-seed known-answer vectors
// and prints the resulting (pk, sk, ct, ss) byte lengths and a leading
// hex prefix of each, for eyeballing against an independent
// implementation's output.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/open-quantum-safe/hqc-go/pkg/hqc/kat"
)

func main() {
	prefixLen := flag.Int("prefix", 16, "number of leading bytes to print per field")
	flag.Parse()

	for _, v := range kat.Vectors {
		result, err := kat.Run(v)
		if err != nil {
			log.Fatalf("%s: %v", v.Name, err)
		}
		printResult(os.Stdout, v.Name, result, *prefixLen)
	}
}

func printResult(w *os.File, name string, r *kat.Result, prefixLen int) {
	fmt.Fprintf(w, "%s\n", name)
	fmt.Fprintf(w, " pk (%d bytes): %s...\n", len(r.PublicKey), hexPrefix(r.PublicKey, prefixLen))
	fmt.Fprintf(w, " sk (%d bytes): %s...\n", len(r.SecretKey), hexPrefix(r.SecretKey, prefixLen))
	fmt.Fprintf(w, " ct (%d bytes): %s...\n", len(r.Ciphertext), hexPrefix(r.Ciphertext, prefixLen))
	fmt.Fprintf(w, " ss (%d bytes): %s\n", len(r.SharedSecret), hex.EncodeToString(r.SharedSecret))
}

func hexPrefix(b []byte, n int) string {
	if n > len(b) {
		n = len(b)
	}
	return hex.EncodeToString(b[:n])
}
