package onestore

import "testing"

func TestParseRevisionRole(t *testing.T) {
	tests := []struct {
		n    uint32
		want RevisionRole
	}{
		{1, RevisionRoleDefaultContent},
		{2, RevisionRoleMetadata},
		{3, RevisionRoleEncryptionKey},
		{4, RevisionRoleVersionMetadata},
	}
	for _, tt := range tests {
		id := ExGuid{Guid: revisionRoleGuid, N: tt.n}
		got, err := ParseRevisionRole(id)
		if err != nil {
			t.Fatalf("ParseRevisionRole(n=%d): %v", tt.n, err)
		}
		if got != tt.want {
			t.Errorf("ParseRevisionRole(n=%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestParseRevisionRoleWrongGuid(t *testing.T) {
	id := ExGuid{Guid: NilGuid, N: 1}
	if _, err := ParseRevisionRole(id); err == nil {
		t.Fatal("ParseRevisionRole with wrong guid: want error, got nil")
	}
}

func TestParseRevisionRoleInvalidN(t *testing.T) {
	id := ExGuid{Guid: revisionRoleGuid, N: 9}
	if _, err := ParseRevisionRole(id); err == nil {
		t.Fatal("ParseRevisionRole with n=9: want error, got nil")
	}
}

func TestIsVersionObjectSpace(t *testing.T) {
	if !IsVersionObjectSpace(ExGuid{Guid: VersionObjectSpaceGuid, N: 1}) {
		t.Error("IsVersionObjectSpace() = false for the well-known guid/n")
	}
	if IsVersionObjectSpace(ExGuid{Guid: VersionObjectSpaceGuid, N: 2}) {
		t.Error("IsVersionObjectSpace() = true for n=2")
	}
}
