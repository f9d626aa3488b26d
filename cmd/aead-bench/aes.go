package main

import (
	"crypto/aes"
	"crypto/cipher"
)

func newAESGCM() cipher.AEAD {
	block, err := aes.NewCipher(make([]byte, 32))
	if err != nil {
		panic(err.Error())
	}

	c, err := cipher.NewGCM(block)
	if err != nil {
		panic(err.Error())
	}

	return c
}
