// Package ports defines the interfaces that connect the conversion service
// to infrastructure adapters.
//
// # Port Interfaces
//
//   - [DocumentStore]: reads Markdown files and persists clean output
//   - [Presenter]: renders banners, styled output, previews and progress
//   - [Logger]: structured logging abstraction
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them with the file
// system, the terminal and zerolog. The Markdown transformation itself
// (internal/markdown) needs no port: it is pure.
package ports
