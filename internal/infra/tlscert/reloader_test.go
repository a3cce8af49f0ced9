package tlscert

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewReloader(t *testing.T) {
	certFile, keyFile := writeTestKeypair(t, t.TempDir())

	r, err := NewReloader(certFile, keyFile)
	if err != nil {
		t.Fatalf("NewReloader() error = %v", err)
	}
	defer r.Stop()

	cert, err := r.GetCertificate(nil)
	if err != nil {
		t.Fatalf("GetCertificate() error = %v", err)
	}
	if cert == nil {
		t.Error("initial keypair not loaded")
	}
}

func TestNewReloaderInvalidKeypair(t *testing.T) {
	dir := t.TempDir()
	certFile := filepath.Join(dir, "server.crt")
	keyFile := filepath.Join(dir, "server.key")
	os.WriteFile(certFile, []byte("not a cert"), 0o644)
	os.WriteFile(keyFile, []byte("not a key"), 0o600)

	if _, err := NewReloader(certFile, keyFile); err == nil {
		t.Error("NewReloader() should fail on invalid keypair")
	}
}

func TestNewReloaderMissingFiles(t *testing.T) {
	if _, err := NewReloader("/nonexistent/server.crt", "/nonexistent/server.key"); err == nil {
		t.Error("NewReloader() should fail on missing files")
	}
}

func TestTLSConfig(t *testing.T) {
	certFile, keyFile := writeTestKeypair(t, t.TempDir())

	r, err := NewReloader(certFile, keyFile)
	if err != nil {
		t.Fatalf("NewReloader() error = %v", err)
	}
	defer r.Stop()

	cfg := r.TLSConfig()
	if cfg.MinVersion != tls.VersionTLS12 {
		t.Errorf("MinVersion = %x", cfg.MinVersion)
	}

	cert, err := cfg.GetCertificate(&tls.ClientHelloInfo{})
	if err != nil {
		t.Fatalf("GetCertificate() error = %v", err)
	}
	if cert == nil {
		t.Error("GetCertificate() returned nil")
	}
}

func TestReloadOnChange(t *testing.T) {
	dir := t.TempDir()
	certFile, keyFile := writeTestKeypair(t, dir)

	r, err := NewReloader(certFile, keyFile, WithDebounce(50*time.Millisecond))
	if err != nil {
		t.Fatalf("NewReloader() error = %v", err)
	}
	r.StartAsync()
	defer r.Stop()

	initial, _ := r.GetCertificate(nil)

	// Give the watcher time to register before rewriting the files.
	time.Sleep(100 * time.Millisecond)
	writeTestKeypair(t, dir)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		current, _ := r.GetCertificate(nil)
		if current != nil && !bytes.Equal(current.Certificate[0], initial.Certificate[0]) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Error("keypair was not reloaded after rewrite")
}

func TestStopKeepsKeypair(t *testing.T) {
	certFile, keyFile := writeTestKeypair(t, t.TempDir())

	r, err := NewReloader(certFile, keyFile, WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("NewReloader() error = %v", err)
	}
	r.StartAsync()
	time.Sleep(50 * time.Millisecond)
	r.Stop()

	cert, err := r.GetCertificate(nil)
	if err != nil || cert == nil {
		t.Errorf("keypair unavailable after Stop: cert=%v err=%v", cert, err)
	}
}

// writeTestKeypair writes a fresh self-signed certificate and key into
// dir and returns their paths.
func writeTestKeypair(t *testing.T, dir string) (certFile, keyFile string) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey() error = %v", err)
	}

	serial, _ := rand.Int(rand.Reader, big.NewInt(1_000_000))
	template := &x509.Certificate{
		SerialNumber: serial,
		Subject: pkix.Name{
			Organization: []string{"TodoVault Test"},
			CommonName:   "localhost",
		},
		NotBefore:             time.Now(),
		NotAfter:              time.Now().Add(24 * time.Hour),
		KeyUsage:              x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
		DNSNames:              []string{"localhost"},
	}

	certDER, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("CreateCertificate() error = %v", err)
	}

	certFile = filepath.Join(dir, "server.crt")
	keyFile = filepath.Join(dir, "server.key")

	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: certDER})
	if err := os.WriteFile(certFile, certPEM, 0o644); err != nil {
		t.Fatalf("write cert: %v", err)
	}

	keyDER, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		t.Fatalf("MarshalECPrivateKey() error = %v", err)
	}
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER})
	if err := os.WriteFile(keyFile, keyPEM, 0o600); err != nil {
		t.Fatalf("write key: %v", err)
	}

	return certFile, keyFile
}
