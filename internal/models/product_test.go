package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductInput_Available(t *testing.T) {
	yes, no := true, false

	assert.True(t, ProductInput{}.Available())
	assert.True(t, ProductInput{IsAvailable: &yes}.Available())
	assert.False(t, ProductInput{IsAvailable: &no}.Available())
}

func TestProductCreate_DecodesFlatBody(t *testing.T) {
	body := `{"name":"Mug","price":1000,"category":"Home","telegram_message_id":42}`

	var in ProductCreate
	require.NoError(t, json.Unmarshal([]byte(body), &in))

	assert.Equal(t, "Mug", in.Name)
	require.NotNil(t, in.Price)
	assert.Equal(t, int64(1000), *in.Price)
	require.NotNil(t, in.Category)
	assert.Equal(t, "Home", *in.Category)
	require.NotNil(t, in.TelegramMessageID)
	assert.Equal(t, int64(42), *in.TelegramMessageID)
	assert.Nil(t, in.Description)
}

func TestProduct_EncodesNullOptionalFields(t *testing.T) {
	out, err := json.Marshal(Product{ID: 1, Name: "Mug", Price: 1000, IsAvailable: true})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Contains(t, decoded, "description")
	assert.Nil(t, decoded["description"])
	assert.Nil(t, decoded["telegram_message_id"])
}
