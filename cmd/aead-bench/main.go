package main

import (
	"strings"

	"github.com/bingoohuang/gg/pkg/ctl"
	"github.com/bingoohuang/gg/pkg/fla9"
	"github.com/bingoohuang/gg/pkg/osx"
	"github.com/bingoohuang/gg/pkg/sigx"
	aead "github.com/manojgop/AEADs"
)

var (
	pVersion = fla9.Bool("version", false, "Show version and exit")
	pInit    = fla9.Bool("init", false, "Create initial ctl and exit")
	pAlg     = fla9.String("alg", "chacha20poly1305", "AEAD algorithm: chacha20poly1305, aesgcm")
)

func init() {
	fla9.Parse()
	ctl.Config{Initing: *pInit, PrintVersion: *pVersion}.ProcessInit()
}

func main() {
	sigx.RegisterSignalProfile()

	r := aead.NewRunner()
	switch strings.ToLower(*pAlg) {
	case "aesgcm", "aes":
		aead.BenchAEAD(r.Group("aesgcm-Gbps"), newAESGCM)
	default:
		aead.BenchAEAD(r.Group("chacha20poly1305-Gbps"), newChaCha20Poly1305)
	}
	osx.ExitIfErr(r.Run())
}
