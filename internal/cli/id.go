package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ghstore-dev/ghstore/pkg/ident"
)

// newIDCmd creates the `id` command, a helper for generating file names
// that will not collide in the store.
// Usage: ghstore id [--name X --namespace url --version 5]
func newIDCmd() *cobra.Command {
	var name, namespace string
	var ver int

	cmd := &cobra.Command{
		Use:   "id",
		Short: "Generate a UUID, random or name-based",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runID(name, namespace, ver)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "name for name-based generation (versions 3 and 5)")
	cmd.Flags().StringVar(&namespace, "namespace", "url", "namespace for name-based generation: dns, url or oid")
	cmd.Flags().IntVar(&ver, "version", 4, "UUID version: 3, 4 or 5")
	return cmd
}

func runID(name, namespace string, version int) error {
	if version == 4 {
		fmt.Println(ident.New())
		return nil
	}

	var space uuid.UUID
	switch namespace {
	case "dns":
		space = ident.NamespaceDNS
	case "url":
		space = ident.NamespaceURL
	case "oid":
		space = ident.NamespaceOID
	default:
		return fmt.Errorf("unknown namespace %q: want dns, url or oid", namespace)
	}

	id, err := ident.FromName(space, name, version)
	if err != nil {
		return err
	}
	fmt.Println(id)
	return nil
}
