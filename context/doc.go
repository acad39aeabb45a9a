// Package context provides dependency injection for pipeline services.
//
// Core types:
//   - Services: Collection of all apksweep services for injection
//
// Context injection functions:
//   - WithCleaner/Cleaner: Artifact cleaner injection
//   - WithArchiver/Archiver: Archive store injection
//   - WithRunner/Runner: Command runner injection (for testing)
//   - WithLogger/Logger: Component logger injection
//
// The notifier is injected through notify.WithNotifier.
//
// Example usage:
//
//	settings, _ := config.Load(resolved)
//	services := context.NewServices(settings, logger)
//	ctx := services.InjectAll(ctx)
//
//	// Later, retrieve services
//	cleaner := context.Cleaner(ctx)
//	runner := context.GetRunner(ctx)
package context
