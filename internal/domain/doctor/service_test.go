package doctor

import (
	"context"
	"testing"
)

type mockRepo struct {
	doctors map[int]*Doctor
}

func (m *mockRepo) GetByID(_ context.Context, id int) (*Doctor, error) {
	d, ok := m.doctors[id]
	if !ok {
		return nil, nil
	}
	return d, nil
}

func TestGetByIDAbsent(t *testing.T) {
	svc := NewService(&mockRepo{doctors: map[int]*Doctor{}})
	d, err := svc.GetByID(context.Background(), 9)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if d != nil {
		t.Errorf("expected nil for absent doctor, got %+v", d)
	}
}

func TestLogin(t *testing.T) {
	svc := NewService(&mockRepo{doctors: map[int]*Doctor{
		1: {ID: 1, Name: "华佗"},
	}})
	ctx := context.Background()

	tests := []struct {
		name     string
		id       int
		username string
		wantOK   bool
	}{
		{"match", 1, "华佗", true},
		{"wrong name", 1, "扁鹊", false},
		{"unknown id", 2, "华佗", false},
		{"empty name", 1, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := svc.Login(ctx, tt.id, tt.username)
			if err != nil {
				t.Fatalf("Login: %v", err)
			}
			if got := d != nil; got != tt.wantOK {
				t.Errorf("Login(%d, %q) ok = %v, want %v", tt.id, tt.username, got, tt.wantOK)
			}
		})
	}
}
