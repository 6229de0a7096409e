package service

import (
	"context"
	"errors"
	"testing"

	"github.com/innstack/hotel-system/internal/core/domain"
	"github.com/innstack/hotel-system/internal/core/ports"
)

func TestPropertyService_Create_OwnerOnly(t *testing.T) {
	repo := newStubPropertyRepo()
	svc := NewPropertyService(repo, discardLogger)

	input := ports.CreatePropertyInput{Name: "Grand Plaza", Address: "1 Main St", PropertyType: "hotel"}

	customer := ports.Actor{UserID: "guest_1", Role: domain.RoleWebsiteCustomer}
	if _, err := svc.Create(context.Background(), customer, input); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("customer create: expected ErrForbidden, got %v", err)
	}

	manager := ports.Actor{UserID: "manager_1", Role: domain.RoleManager}
	if _, err := svc.Create(context.Background(), manager, input); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("manager create: expected ErrForbidden, got %v", err)
	}

	owner := ports.Actor{UserID: "owner_1", Role: domain.RoleOwner}
	property, err := svc.Create(context.Background(), owner, input)
	if err != nil {
		t.Fatalf("owner create failed: %v", err)
	}
	if property.OwnerID != "owner_1" {
		t.Errorf("expected owner_1, got %q", property.OwnerID)
	}
	if property.ID == "" {
		t.Error("expected generated id")
	}
}

func TestPropertyService_Get_AssignedManagerAllowed(t *testing.T) {
	repo := newStubPropertyRepo()
	svc := NewPropertyService(repo, discardLogger)
	property := seedProperty(repo, "owner_1")
	repo.assignments[property.ID] = []string{"manager_1"}

	manager := ports.Actor{UserID: "manager_1", Role: domain.RoleManager}
	got, err := svc.Get(context.Background(), manager, property.ID)
	if err != nil {
		t.Fatalf("assigned manager should read the property: %v", err)
	}
	if got.ID != property.ID {
		t.Errorf("wrong property returned: %q", got.ID)
	}

	stranger := ports.Actor{UserID: "manager_2", Role: domain.RoleManager}
	if _, err := svc.Get(context.Background(), stranger, property.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("unassigned manager: expected ErrForbidden, got %v", err)
	}
}

func TestPropertyService_List_PerRole(t *testing.T) {
	repo := newStubPropertyRepo()
	svc := NewPropertyService(repo, discardLogger)
	owned := seedProperty(repo, "owner_1")
	other := seedProperty(repo, "owner_2")
	repo.assignments[other.ID] = []string{"manager_1"}

	owner := ports.Actor{UserID: "owner_1", Role: domain.RoleOwner}
	got, err := svc.List(context.Background(), owner)
	if err != nil {
		t.Fatalf("owner list: %v", err)
	}
	if len(got) != 1 || got[0].ID != owned.ID {
		t.Errorf("owner must see only owned properties, got %+v", got)
	}

	manager := ports.Actor{UserID: "manager_1", Role: domain.RoleManager}
	got, err = svc.List(context.Background(), manager)
	if err != nil {
		t.Fatalf("manager list: %v", err)
	}
	if len(got) != 1 || got[0].ID != other.ID {
		t.Errorf("manager must see only managed properties, got %+v", got)
	}

	customer := ports.Actor{UserID: "guest_1", Role: domain.RoleWebsiteCustomer}
	if _, err := svc.List(context.Background(), customer); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("customer list: expected ErrForbidden, got %v", err)
	}
}

func TestPropertyService_Update_OwnerOnly(t *testing.T) {
	repo := newStubPropertyRepo()
	svc := NewPropertyService(repo, discardLogger)
	property := seedProperty(repo, "owner_1")
	repo.assignments[property.ID] = []string{"manager_1"}

	name := "Renamed Plaza"

	// Even an assigned manager may not modify the property itself.
	manager := ports.Actor{UserID: "manager_1", Role: domain.RoleManager}
	if _, err := svc.Update(context.Background(), manager, property.ID, ports.PropertyPatch{Name: &name}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("manager update: expected ErrForbidden, got %v", err)
	}

	owner := ports.Actor{UserID: "owner_1", Role: domain.RoleOwner}
	updated, err := svc.Update(context.Background(), owner, property.ID, ports.PropertyPatch{Name: &name})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Name != "Renamed Plaza" {
		t.Errorf("expected renamed property, got %q", updated.Name)
	}
	if updated.Address != property.Address {
		t.Errorf("omitted fields must keep their values, got %q", updated.Address)
	}
}

func TestPropertyService_Delete_OwnerOnly(t *testing.T) {
	repo := newStubPropertyRepo()
	svc := NewPropertyService(repo, discardLogger)
	property := seedProperty(repo, "owner_1")

	stranger := ports.Actor{UserID: "owner_2", Role: domain.RoleOwner}
	if err := svc.Delete(context.Background(), stranger, property.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	owner := ports.Actor{UserID: "owner_1", Role: domain.RoleOwner}
	if err := svc.Delete(context.Background(), owner, property.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), owner, property.ID); !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound after delete, got %v", err)
	}
}
