package services

type AddGuestCommand struct {
	Name     string `validate:"required,max=100"`
	FamilyID string `validate:"required,max=100"`
}

// AssignGuestCommand picks a guest by name. FamilyID is only needed when
// several available guests share that name.
type AssignGuestCommand struct {
	TableID   int    `validate:"required,min=1"`
	GuestName string `validate:"required"`
	FamilyID  string
}

type AssignFamilyCommand struct {
	TableID  int    `validate:"required,min=1"`
	FamilyID string `validate:"required"`
}

// UnseatCommand names the seated component to release, either by its display
// name ("Family Petrovi") or, for a single-guest wrapper, by the guest's name.
type UnseatCommand struct {
	TableID   int    `validate:"required,min=1"`
	Component string `validate:"required"`
}

type BanFamiliesCommand struct {
	TableID int    `validate:"required,min=1"`
	First   string `validate:"required"`
	Second  string `validate:"required,nefield=First"`
}

type SetLimitsCommand struct {
	TableID     int `validate:"required,min=1"`
	MaxGuests   int `validate:"min=1"`
	MaxFamilies int `validate:"min=1"`
}

// Limits applied to every table created by the service.
type Limits struct {
	MaxGuests   int `validate:"min=1"`
	MaxFamilies int `validate:"min=1"`
}
