package kv

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type opener func(t *testing.T, path string) Store

func backends() map[string]opener {
	return map[string]opener{
		KindMemory: func(t *testing.T, path string) Store {
			return NewMemory()
		},
		KindFile: func(t *testing.T, path string) Store {
			s, err := OpenFile(path + ".json")
			if err != nil {
				t.Fatalf("OpenFile: %v", err)
			}
			return s
		},
		KindSQLite: func(t *testing.T, path string) Store {
			s, err := OpenSQLite(path + ".db")
			if err != nil {
				t.Fatalf("OpenSQLite: %v", err)
			}
			return s
		},
	}
}

func TestStoreGetSet(t *testing.T) {
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			s := open(t, filepath.Join(t.TempDir(), "store"))
			defer s.Close()

			if _, ok, err := s.Get("todos"); err != nil || ok {
				t.Fatalf("Get missing: got ok=%v err=%v, want ok=false err=nil", ok, err)
			}

			if err := s.Set("todos", "[]"); err != nil {
				t.Fatalf("Set: %v", err)
			}
			if err := s.SetMany(map[string]string{"todos": `[{"id":1,"text":"a"}]`, "darkMode": "true"}); err != nil {
				t.Fatalf("SetMany: %v", err)
			}

			v, ok, err := s.Get("todos")
			if err != nil || !ok {
				t.Fatalf("Get todos: ok=%v err=%v", ok, err)
			}
			if v != `[{"id":1,"text":"a"}]` {
				t.Errorf("todos: got %q", v)
			}
			if v, _, _ := s.Get("darkMode"); v != "true" {
				t.Errorf("darkMode: got %q, want true", v)
			}
		})
	}
}

func TestStoreClosed(t *testing.T) {
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			s := open(t, filepath.Join(t.TempDir(), "store"))
			if err := s.Close(); err != nil {
				t.Fatalf("Close: %v", err)
			}
			if err := s.Set("k", "v"); !errors.Is(err, ErrClosed) {
				t.Errorf("Set after close: got %v, want ErrClosed", err)
			}
			if _, _, err := s.Get("k"); !errors.Is(err, ErrClosed) {
				t.Errorf("Get after close: got %v, want ErrClosed", err)
			}
		})
	}
}

func TestPersistentStoresReopen(t *testing.T) {
	for _, name := range []string{KindFile, KindSQLite} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "store")
			open := backends()[name]

			s := open(t, path)
			if err := s.SetMany(map[string]string{"todos": "[]", "darkMode": "false"}); err != nil {
				t.Fatalf("SetMany: %v", err)
			}
			if err := s.Set("darkMode", "true"); err != nil {
				t.Fatalf("Set: %v", err)
			}
			s.Close()

			s = open(t, path)
			defer s.Close()
			if v, ok, err := s.Get("darkMode"); err != nil || !ok || v != "true" {
				t.Errorf("darkMode after reopen: got (%q, %v, %v), want (true, true, nil)", v, ok, err)
			}
			if v, ok, err := s.Get("todos"); err != nil || !ok || v != "[]" {
				t.Errorf("todos after reopen: got (%q, %v, %v), want ([], true, nil)", v, ok, err)
			}
		})
	}
}

func TestOpenFileRecoversCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if s.Recovered() != path+".corrupt" {
		t.Errorf("Recovered: got %q, want %q", s.Recovered(), path+".corrupt")
	}
	if _, ok, _ := s.Get("todos"); ok {
		t.Errorf("corrupt store should start empty")
	}
	if _, err := os.Stat(path + ".corrupt"); err != nil {
		t.Errorf("backup missing: %v", err)
	}

	if err := s.Set("todos", "[]"); err != nil {
		t.Fatalf("Set after recovery: %v", err)
	}
}

func TestOpenFileEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	s, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if s.Recovered() != "" {
		t.Errorf("empty file should not be treated as corrupt")
	}
}

func TestFileStoreFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "store.json")
	s, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if err := s.Set("darkMode", "true"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "{\n  \"darkMode\": \"true\"\n}\n"
	if string(data) != want {
		t.Errorf("file contents:\n got %q\nwant %q", data, want)
	}
}

func TestOpenUnknownKind(t *testing.T) {
	if _, err := Open("redis", "x"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
	s, err := Open(KindMemory, "")
	if err != nil {
		t.Fatalf("Open memory: %v", err)
	}
	s.Close()
}
