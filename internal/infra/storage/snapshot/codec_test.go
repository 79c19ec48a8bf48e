package snapshot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingAvailability/internal/domain"
	"github.com/m04kA/SMC-BookingAvailability/pkg/ptr"
)

func TestEncodeDecode_PreservesBookings(t *testing.T) {
	createdAt := time.Date(2024, 7, 1, 9, 15, 0, 0, time.UTC)
	confirmedAt := time.Date(2024, 7, 2, 11, 0, 0, 0, time.UTC)

	original := []*domain.Booking{
		{
			ID:            "b1",
			Date:          time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
			ServiceID:     "residential",
			ServiceName:   "Limpeza Residencial",
			ClientName:    "Ana",
			ClientPhone:   "+551199999999",
			ClientEmail:   ptr.Ptr("ana@example.com"),
			ClientAddress: "Rua X, 10",
			Status:        domain.StatusConfirmed,
			WhatsappSent:  true,
			CreatedAt:     createdAt,
			ConfirmedAt:   &confirmedAt,
		},
		{
			ID:            "b2",
			Date:          time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
			ServiceID:     "commercial",
			ClientName:    "Bruno",
			ClientPhone:   "5553",
			ClientAddress: "Av. Y",
			Notes:         ptr.Ptr("fundos"),
			Status:        domain.StatusPending,
			WhatsappSent:  true,
			CreatedAt:     createdAt.Add(time.Hour),
		},
	}

	data, err := Encode(original)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, decoded, 2)

	for i := range original {
		want, got := original[i], decoded[i]
		assert.Equal(t, want.ID, got.ID)
		assert.True(t, domain.IsSameDay(want.Date, got.Date))
		assert.Equal(t, want.Status, got.Status)
		assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
		assert.Equal(t, want.WhatsappSent, got.WhatsappSent)
		assert.Equal(t, want.ClientEmail, got.ClientEmail)
		assert.Equal(t, want.Notes, got.Notes)
	}
	require.NotNil(t, decoded[0].ConfirmedAt)
	assert.True(t, confirmedAt.Equal(*decoded[0].ConfirmedAt))
	assert.Nil(t, decoded[1].ConfirmedAt)
}

func TestEncode_Layout(t *testing.T) {
	data, err := Encode([]*domain.Booking{{
		ID:        "b1",
		Date:      time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
		Status:    domain.StatusPending,
		CreatedAt: time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC),
	}})
	require.NoError(t, err)

	assert.Contains(t, string(data), `"date":"2024-07-10"`)
	assert.Contains(t, string(data), `"createdAt":"2024-07-01T09:00:00Z"`)
	assert.NotContains(t, string(data), "confirmedAt")
}

func TestDecode_LegacyRecords(t *testing.T) {
	data := []byte(`[{
		"id": "legacy",
		"date": "2024-07-10T03:00:00.000Z",
		"serviceId": "building",
		"clientName": "Carla",
		"clientPhone": "123",
		"clientAddress": "Rua Z",
		"status": "pending",
		"createdAt": "2024-07-01T12:00:00.000Z"
	}]`)

	bookings, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, bookings, 1)

	b := bookings[0]
	assert.Equal(t, time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC), b.Date)
	assert.False(t, b.WhatsappSent, "missing whatsappSent means false")
	assert.Nil(t, b.ConfirmedAt)
}

func TestDecode_Empty(t *testing.T) {
	for _, input := range []string{"", "  ", "[]", "null"} {
		bookings, err := Decode([]byte(input))
		require.NoError(t, err, input)
		assert.Empty(t, bookings, input)
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{broken`},
		{"not an array", `{"id":"x"}`},
		{"bad date", `[{"id":"x","date":"10/07/2024","status":"pending"}]`},
		{"bad status", `[{"id":"x","date":"2024-07-10","status":"done"}]`},
		{"bad confirmedAt", `[{"id":"x","date":"2024-07-10","status":"confirmed","confirmedAt":"yesterday"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			assert.ErrorIs(t, err, ErrDecode)
		})
	}
}
