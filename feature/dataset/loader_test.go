package dataset

import (
	"testing"

	"pfep-analyzer/core/session"
	"pfep-analyzer/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	mockClient := new(mocks.Client)
	guard := func(c *fiber.Ctx) error { return c.Next() }
	feature := NewFeature(session.New(), mockClient, "test-bucket", zap.NewNop(), guard)

	assert.Equal(t, "dataset", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	err := feature.Load(app)
	assert.NoError(t, err)
}
