// Package config loads the kit's file configuration and derives the
// agent context every tool call carries: the default account, its public
// key, the execution mode and the mirror-node service.
package config
