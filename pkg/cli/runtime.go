package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/coachnote/pkg/cli/config"
	"github.com/secmon-lab/coachnote/pkg/service/summary"
	"github.com/secmon-lab/coachnote/pkg/usecase"
	"github.com/secmon-lab/coachnote/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// runtime collects the configuration shared by every command that opens
// the device store
type runtime struct {
	app  config.App
	repo config.Repository
	llm  config.LLM
}

func (x *runtime) Flags() []cli.Flag {
	var flags []cli.Flag
	flags = append(flags, x.app.Flags()...)
	flags = append(flags, x.repo.Flags()...)
	flags = append(flags, x.llm.Flags()...)
	return flags
}

// Configure opens the repository and builds use cases. The returned closer
// releases the repository.
func (x *runtime) Configure(ctx context.Context) (*usecase.UseCases, func(), error) {
	appCfg, err := x.app.Configure()
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to load configuration")
	}

	factory, err := x.llm.Configure(appCfg.Model())
	if err != nil {
		return nil, nil, err
	}

	repo, err := x.repo.Configure(ctx)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to initialize repository")
	}
	closer := func() {
		if err := repo.Close(); err != nil {
			logging.Default().Error("failed to close repository", "error", err.Error())
		}
	}

	uc := usecase.New(repo,
		usecase.WithLabelDefaults(appCfg.LabelDefaults()),
		usecase.WithSummarizer(summary.New(factory, appCfg.SummaryOptions()...)),
		usecase.WithLocation(appCfg.Location()),
		usecase.WithEmbedTimezone(appCfg.EmbedTimezone()),
	)

	return uc, closer, nil
}
