package services

import (
	"errors"
	"testing"

	"github.com/ochairo/xercesdist/internal/domain/entities"
)

func fixedProbe(goos string, wordSize int) HostProbe {
	return func() (string, int) { return goos, wordSize }
}

func TestResolver_Resolve_AllFamilies(t *testing.T) {
	resolver := NewResolver(entities.DefaultTable(), nil)

	tests := []struct {
		family entities.Family
		bits32 string
		bits64 string
		isZip  bool
	}{
		{entities.Darwin, "xerces-c-3.0.1-x86-macosx-gcc-4.0", "xerces-c-3.0.1-x86-macosx-gcc-4.0", false},
		{entities.Linux, "xerces-c-3.0.1-x86-linux-gcc-3.4", "xerces-c-3.0.1-x86_64-linux-gcc-3.4", false},
		{entities.Windows, "xerces-c-3.0.1-x86-windows-vc-9.0", "xerces-c-3.0.1-x86_64-windows-vc-9.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.family.String(), func(t *testing.T) {
			for _, width := range []entities.Width{entities.Width32, entities.Width64} {
				sel, err := resolver.Resolve(entities.Host{Family: tt.family, Width: width})
				if err != nil {
					t.Fatalf("Resolve(%s) error = %v", width, err)
				}
				if sel.Pair.Bits32 != tt.bits32 || sel.Pair.Bits64 != tt.bits64 {
					t.Errorf("Pair = %+v, want (%s, %s)", sel.Pair, tt.bits32, tt.bits64)
				}
				if sel.IsZip != tt.isZip {
					t.Errorf("IsZip = %v, want %v", sel.IsZip, tt.isZip)
				}
			}
		})
	}
}

func TestResolver_Resolve_LinuxWidthSelection(t *testing.T) {
	resolver := NewResolver(nil, nil)

	sel64, err := resolver.Resolve(entities.Host{Family: entities.Linux, Width: entities.Width64})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if sel64.Name != "xerces-c-3.0.1-x86_64-linux-gcc-3.4" {
		t.Errorf("Name = %v, want xerces-c-3.0.1-x86_64-linux-gcc-3.4", sel64.Name)
	}
	if sel64.Is64 {
		t.Error("Is64 should be false on a 64-bit host")
	}

	sel32, err := resolver.Resolve(entities.Host{Family: entities.Linux, Width: entities.Width32})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if sel32.Name != "xerces-c-3.0.1-x86-linux-gcc-3.4" {
		t.Errorf("Name = %v, want xerces-c-3.0.1-x86-linux-gcc-3.4", sel32.Name)
	}
	if !sel32.Is64 {
		t.Error("Is64 should be true on a 32-bit host")
	}
}

func TestResolver_Resolve_UnknownFamily(t *testing.T) {
	resolver := NewResolver(nil, nil)

	_, err := resolver.Resolve(entities.Host{Family: entities.Family(42), Width: entities.Width64})
	if !errors.Is(err, entities.ErrUnrecognizedPlatform) {
		t.Errorf("Resolve() error = %v, want ErrUnrecognizedPlatform", err)
	}
}

func TestResolver_Resolve_EmptyTable(t *testing.T) {
	resolver := NewResolver(&entities.DistributionTable{}, nil)

	sel, err := resolver.Resolve(entities.Host{Family: entities.Linux, Width: entities.Width64})
	if !errors.Is(err, entities.ErrUnrecognizedPlatform) {
		t.Fatalf("Resolve() error = %v, want ErrUnrecognizedPlatform", err)
	}
	if sel.Name != "" {
		t.Errorf("Name = %q, want no identifier on failure", sel.Name)
	}
}

func TestResolver_ResolveNamed(t *testing.T) {
	resolver := NewResolver(nil, nil)

	tests := []struct {
		name    string
		family  string
		width   string
		want    string
		wantErr error
	}{
		{"canonical family, goarch", "Linux", "amd64", "xerces-c-3.0.1-x86_64-linux-gcc-3.4", nil},
		{"goos family, 32bit", "linux", "32bit", "xerces-c-3.0.1-x86-linux-gcc-3.4", nil},
		{"windows 386", "windows", "386", "xerces-c-3.0.1-x86-windows-vc-9.0", nil},
		{"darwin arm64", "Darwin", "arm64", "xerces-c-3.0.1-x86-macosx-gcc-4.0", nil},
		{"linux wasm", "Linux", "wasm", "xerces-c-3.0.1-x86_64-linux-gcc-3.4", nil},
		{"plan9", "Plan9", "64", "", entities.ErrUnrecognizedPlatform},
		{"empty family", "", "64", "", entities.ErrUnrecognizedPlatform},
		{"bad width", "Linux", "16bit", "", entities.ErrUnrecognizedWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := resolver.ResolveNamed(tt.family, tt.width)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ResolveNamed() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveNamed() error = %v", err)
			}
			if sel.Name != tt.want {
				t.Errorf("Name = %v, want %v", sel.Name, tt.want)
			}
		})
	}
}

func TestResolver_ResolveCurrent(t *testing.T) {
	resolver := NewResolver(nil, nil).WithProbe(fixedProbe("windows", 64))

	sel, err := resolver.ResolveCurrent()
	if err != nil {
		t.Fatalf("ResolveCurrent() error = %v", err)
	}
	if sel.Host.Family != entities.Windows || sel.Host.Width != entities.Width64 {
		t.Errorf("Host = %v, want Windows/64bit", sel.Host)
	}
	if !sel.IsZip {
		t.Error("IsZip should be true on Windows")
	}
	if sel.ArchiveName() != "xerces-c-3.0.1-x86_64-windows-vc-9.0.zip" {
		t.Errorf("ArchiveName() = %v", sel.ArchiveName())
	}
}

func TestResolver_ResolveCurrent_UnsupportedOS(t *testing.T) {
	resolver := NewResolver(nil, nil).WithProbe(fixedProbe("plan9", 64))

	_, err := resolver.ResolveCurrent()
	if !errors.Is(err, entities.ErrUnrecognizedPlatform) {
		t.Fatalf("ResolveCurrent() error = %v, want ErrUnrecognizedPlatform", err)
	}

	var platformErr *entities.UnrecognizedPlatformError
	if !errors.As(err, &platformErr) {
		t.Fatalf("error should be *UnrecognizedPlatformError, got %T", err)
	}
	if platformErr.Family != "plan9" {
		t.Errorf("Family = %v, want plan9", platformErr.Family)
	}
}

func TestResolver_ResolveCurrent_UnknownWordSize(t *testing.T) {
	resolver := NewResolver(nil, nil).WithProbe(fixedProbe("linux", 16))

	_, err := resolver.ResolveCurrent()
	if !errors.Is(err, entities.ErrUnrecognizedWidth) {
		t.Errorf("ResolveCurrent() error = %v, want ErrUnrecognizedWidth", err)
	}
}

func TestResolver_ResolveCurrent_Idempotent(t *testing.T) {
	resolver := NewResolver(nil, nil)

	first, err := resolver.ResolveCurrent()
	if err != nil {
		t.Skipf("host is not a supported platform: %v", err)
	}
	second, err := resolver.ResolveCurrent()
	if err != nil {
		t.Fatalf("second ResolveCurrent() error = %v", err)
	}
	if first != second {
		t.Errorf("ResolveCurrent() not idempotent: %+v != %+v", first, second)
	}
}

func TestResolver_ResolveOverride(t *testing.T) {
	resolver := NewResolver(nil, nil).WithProbe(fixedProbe("linux", 64))

	tests := []struct {
		name   string
		family string
		width  string
		want   string
	}{
		{"no override", "", "", "xerces-c-3.0.1-x86_64-linux-gcc-3.4"},
		{"width only", "", "386", "xerces-c-3.0.1-x86-linux-gcc-3.4"},
		{"family only", "Windows", "", "xerces-c-3.0.1-x86_64-windows-vc-9.0"},
		{"both", "darwin", "32", "xerces-c-3.0.1-x86-macosx-gcc-4.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := resolver.ResolveOverride(tt.family, tt.width)
			if err != nil {
				t.Fatalf("ResolveOverride() error = %v", err)
			}
			if sel.Name != tt.want {
				t.Errorf("Name = %v, want %v", sel.Name, tt.want)
			}
		})
	}
}

func TestResolver_CustomTable(t *testing.T) {
	table, err := entities.NewDistributionTable(map[entities.Family]entities.DistributionPair{
		entities.Darwin:  {Bits32: "d32", Bits64: "d64"},
		entities.Linux:   {Bits32: "l32", Bits64: "l64"},
		entities.Windows: {Bits32: "w32", Bits64: "w64"},
	})
	if err != nil {
		t.Fatalf("NewDistributionTable() error = %v", err)
	}

	sel, err := NewResolver(table, nil).ResolveNamed("Darwin", "64")
	if err != nil {
		t.Fatalf("ResolveNamed() error = %v", err)
	}
	if sel.Name != "d64" {
		t.Errorf("Name = %v, want d64", sel.Name)
	}
}
