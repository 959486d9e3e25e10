package extend

import "github.com/wnxd/dbgeng/dbg"

// ListModules prints every loaded module of the target, skipping unloaded
// entries.
func ListModules(d *dbg.Dbg, _ string) error {
	for m := range d.Modules() {
		if m.Unloaded() {
			continue
		}
		d.Printlnf("module %d: %s (base: %#x)", m.Index, m.DisplayName(), m.Base)
	}
	d.Println("finished listing modules")
	return nil
}

func init() {
	Register("listmodules", ListModules)
}
