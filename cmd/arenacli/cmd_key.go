package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/iov-one/weave/crypto"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/ed25519"
)

func keyPathFlag(cmd *cobra.Command) *string {
	return cmd.Flags().String("key", env("ARENACLI_PRIV_KEY", os.Getenv("HOME")+"/.arena.priv.key"),
		"Path to the private key file. You can use ARENACLI_PRIV_KEY environment variable to set it.")
}

func cmdKeygen() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a new private key.",
		Long: `Generate a new private key.

When successful a new file with binary content containing private key is
created. This command fails if the private key file already exists.`,
		Args: cobra.NoArgs,
	}
	keyPathFl := keyPathFlag(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(*keyPathFl); !os.IsNotExist(err) {
			// Do not allow to overwrite already existing private key.
			return fmt.Errorf("private key file %q already exists, delete this file and try again", *keyPathFl)
		}

		_, priv, err := ed25519.GenerateKey(nil)
		if err != nil {
			return fmt.Errorf("cannot generate ed25519 key: %s", err)
		}

		fd, err := os.OpenFile(*keyPathFl, os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return fmt.Errorf("cannot create private key file: %s", err)
		}
		defer fd.Close()

		if _, err := fd.Write(priv); err != nil {
			return fmt.Errorf("cannot write private key: %s", err)
		}
		return fd.Close()
	}
	return cmd
}

func cmdKeyaddr() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keyaddr",
		Short: "Print out the address associated with your private key.",
		Args:  cobra.NoArgs,
	}
	keyPathFl := keyPathFlag(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		key, err := decodePrivateKey(*keyPathFl)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), key.PublicKey().Address())
		return err
	}
	return cmd
}

func decodePrivateKey(path string) (*crypto.PrivateKey, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q file: %s", path, err)
	}
	if len(raw) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("invalid private key length: %d", len(raw))
	}
	return &crypto.PrivateKey{
		Priv: &crypto.PrivateKey_Ed25519{Ed25519: raw},
	}, nil
}
