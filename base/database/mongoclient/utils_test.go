package mongoclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/mintbay/marketapi/base/ptr"
)

func TestMakeBsonM(t *testing.T) {
	type salePatch struct {
		Price     *string `bson:"price,omitempty"`
		TokenType *string `bson:"tokenType,omitempty"`
		Owner     string  `bson:"owner"`
		Contract  string  `bson:"contract"`
	}

	patch := &salePatch{
		Price:     ptr.String("1000"),
		TokenType: ptr.String(""),
		Contract:  "nft.host",
	}

	updater, err := MakeBsonM(patch)

	assert.NoError(t, err)
	assert.Equal(
		t,
		bson.M{
			"price":     "1000",
			"tokenType": "",
			// owner is zero-valued and left out of the patch
			"contract": "nft.host",
		},
		updater,
	)
}
