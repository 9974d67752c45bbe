// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

/*
Package supervisor runs the long-lived parts of the service under a suture v4
supervisor tree.

The tree has three layers so a failure in one does not take down the others:

	RootSupervisor ("movie-recommendations")
	├── DataSupervisor ("data-layer")
	│   ├── CatalogWarmerService (if TMDB_WARM_INTERVAL > 0)
	│   └── CacheJanitorService (memory cache only)
	├── MessagingSupervisor ("messaging-layer")
	│   └── websocket.Hub
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. Supervisor events are
logged through sutureslog, which writes to zerolog via logging.SlogHandler.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
	    return err
	}
	tree.AddMessagingService(hub)
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

Serve returns when ctx is canceled and every service has stopped, or when the
shutdown timeout expires. UnstoppedServiceReport names services that hung.
*/
package supervisor
