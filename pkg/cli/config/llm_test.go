package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/coachnote/pkg/cli/config"
	"github.com/secmon-lab/coachnote/pkg/service/llm"
)

func TestLLM_Configure(t *testing.T) {
	t.Run("gemini needs a per-device key", func(t *testing.T) {
		factory, err := config.NewLLMForTest("gemini", "", "", "").Configure("")
		gt.NoError(t, err).Required()
		gt.B(t, factory.RequiresCredential()).True()
	})

	t.Run("vertex uses application credentials", func(t *testing.T) {
		factory, err := config.NewLLMForTest("vertex", "", "my-project", "us-central1").Configure("gemini-2.5-pro")
		gt.NoError(t, err).Required()
		gt.B(t, factory.RequiresCredential()).False()
	})

	t.Run("vertex without project", func(t *testing.T) {
		_, err := config.NewLLMForTest("vertex", "", "", "us-central1").Configure("")
		gt.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := config.NewLLMForTest("palm", "", "", "").Configure("")
		gt.Error(t, err).Is(llm.ErrUnknownProvider)
	})

	t.Run("returns flags", func(t *testing.T) {
		gt.Array(t, config.NewLLMForTest("", "", "", "").Flags()).Length(4)
	})
}
