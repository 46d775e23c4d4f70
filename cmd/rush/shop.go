package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ramadhan-rush/internal/engine"
	"github.com/vovakirdan/ramadhan-rush/internal/save"
	"github.com/vovakirdan/ramadhan-rush/internal/shop"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Spend banked score",
	Long: `List the shop, buy items and equip tap effects for the --profile save.

Examples:
  rush shop list
  rush shop buy cons_life
  rush shop equip fx_star`,
}

var shopListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show items and what you own",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return withWallet(func(e *engine.Engine) error {
			printShop(e.Snapshot())
			return nil
		})
	},
}

var shopBuyCmd = &cobra.Command{
	Use:   "buy <item>",
	Short: "Buy an item with banked score",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withWallet(func(e *engine.Engine) error {
			if err := e.Buy(args[0]); err != nil {
				return err
			}
			fmt.Printf("Bought %s. Banked score left: %d\n", args[0], e.Snapshot().BankedScore)
			return nil
		})
	},
}

var shopEquipCmd = &cobra.Command{
	Use:   "equip <item>",
	Short: "Equip or unequip an owned tap effect",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withWallet(func(e *engine.Engine) error {
			if err := e.ToggleEquip(args[0]); err != nil {
				return err
			}
			fx := e.Snapshot().EquippedFx()
			if fx == "" {
				fx = "none"
			}
			fmt.Printf("Equipped effect: %s\n", fx)
			return nil
		})
	},
}

func init() {
	shopCmd.AddCommand(shopListCmd, shopBuyCmd, shopEquipCmd)
}

// withWallet runs fn against an engine bound to the profile's save.
func withWallet(fn func(e *engine.Engine) error) error {
	env, err := setup(os.Stderr, false)
	if err != nil {
		return err
	}
	defer env.Close()
	if env.deps.Saver == nil {
		return fmt.Errorf("no save backend available for profile %q", flagProfile)
	}
	return fn(engine.New(env.cfg, env.deps, 1))
}

func printShop(s save.Snapshot) {
	fmt.Printf("Profile %s - banked score: %d\n\n", flagProfile, s.BankedScore)
	fmt.Printf("  %-12s  %-18s  %-5s  %-9s  %s\n", "ID", "Name", "Cost", "Status", "Description")
	fmt.Printf("  %-12s  %-18s  %-5s  %-9s  %s\n", "--", "----", "----", "------", "-----------")
	for _, it := range shop.Catalog() {
		status := ""
		switch {
		case it.ID == shop.ExtraLife:
			status = fmt.Sprintf("%d/%d", s.Consumables.Life, it.Max)
		case it.ID == shop.DoubleScore:
			status = fmt.Sprintf("%d/%d", s.Consumables.Double, it.Max)
		case s.EquippedFx() == it.ID:
			status = "equipped"
		case s.Owns(it.ID):
			status = "owned"
		}
		fmt.Printf("  %-12s  %-18s  %-5d  %-9s  %s\n", it.ID, it.Name, it.Cost, status, it.Desc)
	}
}
