package fishhash_test

import (
	"fmt"

	"github.com/opd-ai/go-fishhash"
)

// Build-once, finalize-per-nonce usage of the keyed header hash.
func ExampleNewPowHash() {
	var prePowHash [32]byte
	for i := range prePowHash {
		prePowHash[i] = 0x2a
	}

	pending := fishhash.NewPowHash(prePowHash, 5435345234)
	digest := pending.FinalizeWithNonce(432432432)

	fmt.Printf("%x\n", digest)
	// Output: 2fb72b63dd0dd0d82b00cd9f83d4eca0710b7eb8c05966888f39ebc578978abf
}

func ExampleConfig_Validate() {
	config := fishhash.Config{Mode: fishhash.LightMode}
	fmt.Println(config.Validate(), config.Mode)
	// Output: <nil> LightMode
}
