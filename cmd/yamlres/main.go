// Command yamlres lists, exports, imports and checks YAML translation files.
//
// Every setting can come from the environment (or a dotenv file) and be
// overridden by flags:
//
//	YAMLRES_PATH_PATTERN=./i18n/{language}.yml yamlres languages
//	yamlres export --pattern ./i18n/{language}.yml > messages.json
//	yamlres import --pattern ./i18n/{language}.yml < messages.json
//	yamlres check --reference en
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], streams{in: os.Stdin, out: os.Stdout, err: os.Stderr})
	stop()
	os.Exit(code)
}
