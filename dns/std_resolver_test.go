package dns

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/foxcpp/go-mockdns"
)

func TestNewStdResolver(t *testing.T) {
	r := NewStdResolver()
	if r == nil {
		t.Fatal("expected non-nil resolver")
	}
	if r.resolver == nil {
		t.Error("expected non-nil internal resolver")
	}
}

func TestStdResolverLookupTXT(t *testing.T) {
	srv, err := mockdns.NewServer(map[string]mockdns.Zone{
		"_dmarc.example.org.": {
			TXT: []string{"v=DMARC1; p=reject"},
		},
	}, false)
	if err != nil {
		t.Fatal(err)
	}
	defer srv.Close()

	var netResolver net.Resolver
	srv.PatchNet(&netResolver)
	r := &StdResolver{resolver: &netResolver}
	ctx := context.Background()

	records, err := r.LookupTXT(ctx, "_dmarc.example.org.")
	if err != nil {
		t.Fatalf("LookupTXT() error = %v", err)
	}
	if len(records) != 1 || records[0] != "v=DMARC1; p=reject" {
		t.Errorf("LookupTXT() = %v, want the published record", records)
	}

	if _, err := r.LookupTXT(ctx, "_dmarc.missing.example."); !IsNotFound(err) {
		t.Errorf("LookupTXT(missing) error = %v, want not found", err)
	}
}

func TestConvertError(t *testing.T) {
	if got := convertError(nil); got != nil {
		t.Errorf("convertError(nil) = %v, want nil", got)
	}
	if got := convertError(&net.DNSError{IsNotFound: true}); !IsNotFound(got) {
		t.Errorf("convertError(not found) = %v, want ErrDNSNotFound", got)
	}
	if got := convertError(&net.DNSError{IsTimeout: true}); !IsTimeout(got) {
		t.Errorf("convertError(timeout) = %v, want ErrDNSTimeout", got)
	}
	if got := convertError(&net.DNSError{IsTemporary: true}); !IsServFail(got) {
		t.Errorf("convertError(temporary) = %v, want ErrDNSServFail", got)
	}

	// Unrecognized errors are passed through wrapped.
	plain := errors.New("connection refused")
	if got := convertError(plain); !errors.Is(got, plain) {
		t.Errorf("convertError(plain) = %v, want it to wrap the original", got)
	}
}
