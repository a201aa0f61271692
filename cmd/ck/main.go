package main

import (
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"

	ckapp "github.com/rolandpakai/liferay-ckeditor/app"
)

func main() {
	// An interrupt aborts immediately. Whatever the external tools left
	// behind (a half-applied patch series, a partial download) stays for
	// the operator to clean up; re-running setup is the usual remedy.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, unix.SIGTERM)
	go func() {
		s := <-sig
		fmt.Fprintf(os.Stderr, "ck: aborted (%s)\n", s)
		os.Exit(1)
	}()

	ckapp.App.Reader = os.Stdin
	ckapp.App.Writer = os.Stdout
	ckapp.App.ErrWriter = os.Stderr
	if err := ckapp.App.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
