package order_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/ecomshop/shop-api/internal/model"
	"github.com/ecomshop/shop-api/internal/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestRoundTrip(t *testing.T) {
	// Given
	date := time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)
	dto := &order.OrderDTO{
		OrderDate:   order.NewOrderTime(date),
		Status:      "VALIDÉE",
		MemberID:    ptr(uint32(7)),
		ProductIDs:  []uint32{1, 2},
		TotalAmount: ptr(42.5),
	}

	// When
	entity := order.ToEntity(dto)
	back := order.ToDTO(entity)

	// Then: scalar fields survive
	require.NotNil(t, back)
	require.NotNil(t, back.OrderDate)
	assert.True(t, date.Equal(back.OrderDate.Time))
	assert.Equal(t, "VALIDÉE", back.Status)
	require.NotNil(t, back.TotalAmount)
	assert.Equal(t, 42.5, *back.TotalAmount)
	require.NotNil(t, back.MemberID)
	assert.Equal(t, uint32(7), *back.MemberID)

	// Then: associations are left unresolved
	assert.Nil(t, entity.Member)
	assert.Nil(t, entity.Products)
	assert.Nil(t, back.ProductIDs)
}

func TestToEntity_KeepsSubmittedStatus(t *testing.T) {
	entity := order.ToEntity(&order.OrderDTO{Status: "NOT_A_REAL_STATUS"})
	assert.Equal(t, model.OrderStatus("NOT_A_REAL_STATUS"), entity.Status)

	entity = order.ToEntity(&order.OrderDTO{Status: "VALIDÉE"})
	assert.Equal(t, model.OrderStatusValidated, entity.Status)

	entity = order.ToEntity(&order.OrderDTO{})
	assert.Empty(t, entity.Status)
}

func TestToDTO_ProductAssociation(t *testing.T) {
	t.Run("nil association gives nil ids", func(t *testing.T) {
		dto := order.ToDTO(&model.Order{ID: 1})
		assert.Nil(t, dto.ProductIDs)

		body, err := json.Marshal(dto)
		require.NoError(t, err)
		assert.Contains(t, string(body), `"produitIds":null`)
	})

	t.Run("empty association gives empty ids", func(t *testing.T) {
		dto := order.ToDTO(&model.Order{ID: 1, Products: []model.Product{}})
		require.NotNil(t, dto.ProductIDs)
		assert.Empty(t, dto.ProductIDs)

		body, err := json.Marshal(dto)
		require.NoError(t, err)
		assert.Contains(t, string(body), `"produitIds":[]`)
	})

	t.Run("member id comes from the associated member", func(t *testing.T) {
		dto := order.ToDTO(&model.Order{MemberID: 3, Member: &model.Member{ID: 3}})
		require.NotNil(t, dto.MemberID)
		assert.Equal(t, uint32(3), *dto.MemberID)

		dto = order.ToDTO(&model.Order{})
		assert.Nil(t, dto.MemberID)
	})
}

func TestNilInNilOut(t *testing.T) {
	assert.Nil(t, order.ToEntity(nil))
	assert.Nil(t, order.ToDTO(nil))
	assert.Nil(t, order.ToDTOList(nil))
	assert.Nil(t, order.ToEntityList(nil))
	assert.Nil(t, order.ToResponse(nil))
}

func TestListVariants_PreserveOrderAndSize(t *testing.T) {
	dtos := order.ToDTOList([]model.Order{{ID: 3}, {ID: 1}, {ID: 2}})
	require.Len(t, dtos, 3)
	assert.Equal(t, uint32(3), *dtos[0].ID)
	assert.Equal(t, uint32(1), *dtos[1].ID)
	assert.Equal(t, uint32(2), *dtos[2].ID)

	entities := order.ToEntityList([]order.OrderDTO{{Status: "ANNULÉE"}, {}})
	require.Len(t, entities, 2)
	assert.Equal(t, model.OrderStatusCancelled, entities[0].Status)
	assert.Equal(t, model.OrderStatusInProgress, entities[1].Status)
}

func TestOrderTime(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  time.Time
	}{
		{name: "With millis", input: "2024-01-01T00:00:00.000Z", want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "Without millis", input: "2024-03-05T08:09:10Z", want: time.Date(2024, 3, 5, 8, 9, 10, 0, time.UTC)},
		{name: "Without zone", input: "2024-03-05T08:09:10", want: time.Date(2024, 3, 5, 8, 9, 10, 0, time.UTC)},
		{name: "With offset", input: "2024-03-05T10:09:10+02:00", want: time.Date(2024, 3, 5, 8, 9, 10, 0, time.UTC)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := order.ParseOrderTime(tc.input)
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(parsed))
		})
	}

	t.Run("Empty string is treated as missing", func(t *testing.T) {
		var dto order.OrderDTO
		require.NoError(t, json.Unmarshal([]byte(`{"dateCommande":"  "}`), &dto))
		require.NotNil(t, dto.OrderDate)
		assert.True(t, dto.OrderDate.IsZero())
	})

	t.Run("Invalid", func(t *testing.T) {
		var v order.OrderTime
		assert.Error(t, json.Unmarshal([]byte(`"01/02/2024"`), &v))
	})

	t.Run("Written in UTC with millis", func(t *testing.T) {
		body, err := json.Marshal(order.NewOrderTime(time.Date(2024, 1, 1, 2, 0, 0, 0, time.FixedZone("CET", 3600))))
		require.NoError(t, err)
		assert.Equal(t, `"2024-01-01T01:00:00.000Z"`, string(body))
	})
}
