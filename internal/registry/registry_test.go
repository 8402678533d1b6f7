package registry

import (
	"context"
	"strings"
	"testing"
)

type stubFrontend struct {
	id  string
	ran bool
}

func (s *stubFrontend) ID() string    { return s.id }
func (s *stubFrontend) Title() string { return strings.ToUpper(s.id) }
func (s *stubFrontend) Run(context.Context, Session) error {
	s.ran = true
	return nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test-b", func() Frontend { return &stubFrontend{id: "test-b"} })
	Register("test-a", func() Frontend { return &stubFrontend{id: "test-a"} })

	if !Exists("test-a") || Exists("test-missing") {
		t.Fatal("Exists reported the wrong registrations")
	}

	f, err := Create("test-a")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if f.ID() != "test-a" {
		t.Errorf("Create returned %q", f.ID())
	}
	if err := f.Run(context.Background(), Session{}); err != nil || !f.(*stubFrontend).ran {
		t.Error("created frontend did not run")
	}

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "test-") {
			ids = append(ids, info.ID+"="+info.Title)
		}
	}
	if got := strings.Join(ids, ","); got != "test-a=TEST-A,test-b=TEST-B" {
		t.Errorf("List() = %s, expected sorted test frontends with titles", got)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-frontend")
	if err == nil || !strings.Contains(err.Error(), "no-such-frontend") {
		t.Errorf("Create(unknown) error = %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func() Frontend { return &stubFrontend{id: "test-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test-dup", func() Frontend { return &stubFrontend{id: "test-dup"} })
}
