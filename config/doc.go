// Package config resolves apksweep settings from layered sources.
//
// Precedence, highest first:
//  1. Command-line flags (ResolveWithFlags)
//  2. Environment variables (APKSWEEP_OUTPUT_DIR, APKSWEEP_DRY_RUN, ...)
//  3. Local config: .apksweep.yaml in the git root of the Flutter project
//  4. Global config: ~/.config/apksweep/config.yaml
//  5. Built-in defaults
//
// # Basic Usage
//
//	resolver := config.NewResolver(config.AppResolverConfig())
//	settings, warnings := config.Load(resolver.Resolve())
//	fmt.Println(settings.OutputDir) // "build/app/outputs/flutter-apk"
//
// # Config Files
//
// Both files are flat YAML maps. List-valued keys accept either a YAML
// sequence or a comma-separated string:
//
//	output_dir: build/app/outputs/flutter-apk
//	package_suffixes: [.apk, .aab]
//	archive_dir: .apksweep/archive
//	release_command: flutter build apk --release --split-per-abi
//
// # Config Sources
//
// Each resolved value tracks where it came from ("default", "global",
// "local", "env" or "flag"), which `apksweep config show` prints.
package config
