package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB - ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

var inlineSeeds = []string{
	"",
	"CLEF(do,3) Ky(do,mi,sol) ri-(sol,fa) e(re) BAR(full)",
	"MODE(eight) CLEF(fa,2) Al-(sol,liq,la) le(dot,fa) lu(te,neut,ti) ia(do+,re-)",
	"Ky(do) CLEF(do,9) e(h_epi,do,h_epi,re,mi) BAR(half)",
	"CLEF CLEF() CLEF(xx) BAR(oops) MODE(nine) x(,) y(do",
	"a)b( c(do)(re) ((((",
	"CLEF(do,1) son(do,re,mi,fa,sol,la,ti,do+,re+,mi+,fa+,sol+)",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

// addTestdataSeeds добавляет все *.chant файлы из testdata репозитория.
func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".chant" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
