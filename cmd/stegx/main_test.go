package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saylorsolutions/stegx/cmd/internal"
	"github.com/saylorsolutions/stegx/pkg/carrier"
	"github.com/saylorsolutions/stegx/pkg/lsb"
	"github.com/saylorsolutions/stegx/pkg/xor"
)

func quietEcho(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := internal.Output
	internal.Output = &buf
	t.Cleanup(func() {
		internal.Output = orig
	})
	return &buf
}

func TestEncryptDecryptFile(t *testing.T) {
	var enc bytes.Buffer
	require.NoError(t, encryptFile(strings.NewReader("HELLO"), &enc, "1234"))
	assert.Equal(t, "eXd/eH4=", enc.String())

	var dec bytes.Buffer
	require.NoError(t, decryptFile(&enc, &dec, "1234"))
	assert.Equal(t, "HELLO", dec.String())

	assert.ErrorIs(t, decryptFile(strings.NewReader("%%%"), &dec, "1234"), xor.ErrDecode)
	assert.ErrorIs(t, encryptFile(strings.NewReader("x"), &dec, ""), xor.ErrInvalidKey)
}

func TestRunEncryptDecrypt(t *testing.T) {
	out := quietEcho(t)
	dir := t.TempDir()
	files := map[string][]byte{
		"a.txt": []byte("first file"),
		"b.bin": {0x0, 0xff, 0x10, 0x20},
		"c.txt": nil,
	}
	var paths []string
	for name, data := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, data, 0o600))
		paths = append(paths, path)
	}

	require.NoError(t, runEncrypt(append([]string{"-p", "passcode", "-j", "2"}, paths...)))
	var encrypted []string
	for _, path := range paths {
		encPath := xor.EncryptedName(path)
		require.FileExists(t, encPath)
		require.NoError(t, os.Remove(path))
		encrypted = append(encrypted, encPath)
	}
	assert.Contains(t, out.String(), ".enc")

	require.NoError(t, runDecrypt(append([]string{"--passcode", "passcode"}, encrypted...)))
	for name, data := range files {
		got, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, len(data), len(got))
		if len(data) > 0 {
			assert.Equal(t, data, got)
		}
	}
}

func TestRunEncrypt_Neg(t *testing.T) {
	quietEcho(t)
	assert.Error(t, runEncrypt(nil))

	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	require.NoError(t, os.WriteFile(good, []byte("good"), 0o600))
	err := runEncrypt([]string{"-q", good, filepath.Join(dir, "missing.txt")})
	assert.ErrorContains(t, err, "missing.txt")
	assert.FileExists(t, xor.EncryptedName(good), "Other files should still be processed")
	assert.NoFileExists(t, filepath.Join(dir, "missing.txt.enc"))

	assert.ErrorIs(t, runEncrypt([]string{"--help"}), errUsage)
	assert.Error(t, runEncrypt([]string{"--not-a-flag"}))
}

func TestResolvePasscode(t *testing.T) {
	opts := newOptions("test", "", "").withPasscode()
	require.NoError(t, opts.parse(nil))

	t.Setenv(passcodeEnv, "")
	assert.Equal(t, xor.DefaultPasscode, opts.resolvePasscode())

	t.Setenv(passcodeEnv, "from-env")
	assert.Equal(t, "from-env", opts.resolvePasscode())

	opts = newOptions("test", "", "").withPasscode()
	require.NoError(t, opts.parse([]string{"-p", "from-flag"}))
	assert.Equal(t, "from-flag", opts.resolvePasscode())
}

func writeCarrier(t *testing.T, path string, width, height int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = byte(i*31 + 7)
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()
	require.NoError(t, png.Encode(f, img))
}

func TestRunHideReveal(t *testing.T) {
	quietEcho(t)
	dir := t.TempDir()
	input := filepath.Join(dir, "cover.png")
	writeCarrier(t, input, 16, 16)

	tests := map[string][]string{
		"Plain":      nil,
		"Color only": {"--color-only"},
		"Screened":   {"--screen", "-p", "hidden"},
		"Both":       {"-C", "-s"},
	}
	for name, extra := range tests {
		t.Run(name, func(t *testing.T) {
			stego := filepath.Join(dir, strings.ReplaceAll(name, " ", "_")+".png")
			args := append([]string{"-i", input, "-m", "meet at noon", "-o", stego}, extra...)
			require.NoError(t, runHide(args))

			recovered := filepath.Join(dir, strings.ReplaceAll(name, " ", "_")+".txt")
			args = append([]string{"-i", stego, "-o", recovered}, extra...)
			require.NoError(t, runReveal(args))
			data, err := os.ReadFile(recovered)
			require.NoError(t, err)
			assert.Equal(t, "meet at noon", string(data))
		})
	}
}

func TestRunHide_File(t *testing.T) {
	quietEcho(t)
	dir := t.TempDir()
	input := filepath.Join(dir, "cover.png")
	writeCarrier(t, input, 8, 8)
	secret := filepath.Join(dir, "secret.bin")
	require.NoError(t, os.WriteFile(secret, []byte{0x0, 0x1, 0x2, 0xfe}, 0o600))

	require.NoError(t, runHide([]string{"-i", input, "-f", secret}))
	stego := filepath.Join(dir, "cover.stego.png")
	f, err := os.Open(stego)
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()
	c, err := carrier.Decode(f)
	require.NoError(t, err)
	payload, err := lsb.Extract(c.Channels())
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0, 0x1, 0x2, 0xfe}, payload)
}

func TestRunHide_Neg(t *testing.T) {
	quietEcho(t)
	dir := t.TempDir()
	input := filepath.Join(dir, "tiny.png")
	writeCarrier(t, input, 2, 2)

	err := runHide([]string{"-i", input, "-m", "HI!"})
	assert.ErrorIs(t, err, lsb.ErrCapacityExceeded)
	assert.NoFileExists(t, filepath.Join(dir, "tiny.stego.png"))

	err = runHide([]string{"-i", input, "-m", "x", "-o", filepath.Join(dir, "out.jpg")})
	assert.ErrorIs(t, err, carrier.ErrLossyFormat)

	assert.Error(t, runHide([]string{"-i", input, "-m", "x", "-f", input}))
	assert.ErrorContains(t, runHide([]string{"-i", input}), "nothing to hide")
	assert.NoFileExists(t, filepath.Join(dir, "tiny.stego.png"), "Nothing should be written without a payload")
	assert.Error(t, runHide([]string{"-m", "x"}))
	assert.Error(t, runReveal([]string{"-i", filepath.Join(dir, "missing.png")}))
}

func TestRunHideReveal_PasscodeImpliesScreen(t *testing.T) {
	quietEcho(t)
	dir := t.TempDir()
	input := filepath.Join(dir, "cover.png")
	writeCarrier(t, input, 16, 16)
	stego := filepath.Join(dir, "cover.stego.png")
	require.NoError(t, runHide([]string{"-i", input, "-m", "meet at noon", "-p", "hidden"}))

	f, err := os.Open(stego)
	require.NoError(t, err)
	c, err := carrier.Decode(f)
	require.NoError(t, f.Close())
	require.NoError(t, err)
	raw, err := lsb.Extract(c.Channels())
	require.NoError(t, err)
	assert.NotEqual(t, "meet at noon", string(raw), "Payload should be screened when a passcode is given")

	recovered := filepath.Join(dir, "recovered.txt")
	require.NoError(t, runReveal([]string{"-i", stego, "-o", recovered, "-p", "hidden"}))
	data, err := os.ReadFile(recovered)
	require.NoError(t, err)
	assert.Equal(t, "meet at noon", string(data))
}

func TestWriteFile_Mode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Unix permission bits don't apply on Windows")
	}
	quietEcho(t)
	dir := t.TempDir()
	secret := filepath.Join(dir, "secret.txt")
	require.NoError(t, os.WriteFile(secret, []byte("private"), 0o600))
	require.NoError(t, os.Chmod(secret, 0o640))

	require.NoError(t, runEncrypt([]string{"-p", "passcode", secret}))
	info, err := os.Stat(xor.EncryptedName(secret))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm(), "Encrypted file should keep the source permissions")

	input := filepath.Join(dir, "cover.png")
	writeCarrier(t, input, 8, 8)
	require.NoError(t, runHide([]string{"-i", input, "-m", "x"}))
	info, err = os.Stat(filepath.Join(dir, "cover.stego.png"))
	require.NoError(t, err)
	assert.Equal(t, newFileMode, info.Mode().Perm())
}

func TestRunReveal_Truncated(t *testing.T) {
	quietEcho(t)
	dir := t.TempDir()
	input := filepath.Join(dir, "noise.png")
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	f, err := os.Create(input)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	assert.ErrorIs(t, runReveal([]string{"-i", input}), lsb.ErrTruncatedStream)
}

func TestRunPasscode(t *testing.T) {
	assert.NoError(t, runPasscode([]string{"-n", "8"}))
	assert.Error(t, runPasscode([]string{"-n", "0"}))
}

func TestRunCapacity(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "cover.png")
	writeCarrier(t, input, 4, 4)
	assert.NoError(t, runCapacity([]string{"-i", input}))
	assert.NoError(t, runCapacity([]string{"-i", input, "--color-only"}))
}
