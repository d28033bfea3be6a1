package requests

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validate(t *testing.T, obj any) error {
	t.Helper()
	return binding.Validator.ValidateStruct(obj)
}

func TestClownRequestValid(t *testing.T) {
	rating := 3
	req := ClownRequest{
		Name:   "Pennywise",
		Email:  "penny@example.com",
		Rating: &rating,
		Status: "active",
	}
	assert.NoError(t, validate(t, req))
}

func TestClownRequestCollectsEveryError(t *testing.T) {
	rating := 9
	req := ClownRequest{
		Email:  "not-an-email",
		Rating: &rating,
		Status: "happy",
	}

	err := validate(t, req)
	require.Error(t, err)

	errs := Translate(err)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "rating")
	assert.Contains(t, errs, "status")
	assert.Equal(t, []string{"Die Bewertung muss zwischen 1 und 5 liegen."}, errs["rating"])
}

func TestClownRequestRatingZeroFails(t *testing.T) {
	// A pointer distinguishes "rating: 0" from a missing field; zero is
	// still out of range.
	rating := 0
	req := ClownRequest{
		Name:   "Bozo",
		Email:  "bozo@example.com",
		Rating: &rating,
		Status: "inactive",
	}

	err := validate(t, req)
	require.Error(t, err)
	assert.Contains(t, Translate(err), "rating")
}

func TestLoginRequestBothFieldsRequired(t *testing.T) {
	err := validate(t, LoginRequest{})
	require.Error(t, err)

	errs := Translate(err)
	assert.Equal(t, []string{"Die Email ist ein Pflichtfeld."}, errs["email"])
	assert.Equal(t, []string{"Das Passwort ist ein Pflichtfeld."}, errs["password"])
}

func TestStoreTweetRequestMaxLength(t *testing.T) {
	long := make([]byte, 281)
	for i := range long {
		long[i] = 'a'
	}

	err := validate(t, StoreTweetRequest{Text: string(long)})
	require.Error(t, err)
	assert.Equal(t, []string{"Der Text darf höchstens 280 Zeichen lang sein."}, Translate(err)["text"])

	assert.NoError(t, validate(t, StoreTweetRequest{Text: string(long[:280])}))
}

func TestStoreTransactionRequestTypeEnum(t *testing.T) {
	amount := 10.0
	req := StoreTransactionRequest{
		Name:       "Test",
		Type:       "transfer",
		Amount:     &amount,
		CategoryID: 1,
		CreatedAt:  "2026-01-01",
	}

	err := validate(t, req)
	require.Error(t, err)
	assert.Contains(t, Translate(err), "type")
}

func TestTranslateFallsBackToGeneral(t *testing.T) {
	errs := Translate(assert.AnError)
	require.Contains(t, errs, "general")
	assert.Len(t, errs["general"], 1)
}

func TestParseDateLayouts(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2026-03-14T15:09:26Z", time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)},
		{"2026-03-14 15:09:26", time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)},
		{"2026-03-14", time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		got, ok := ParseDate(tc.in)
		require.True(t, ok, tc.in)
		assert.True(t, got.Equal(tc.want), tc.in)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "gestern", "14.03.2026", "2026-13-40"} {
		_, ok := ParseDate(in)
		assert.False(t, ok, in)
	}
}
