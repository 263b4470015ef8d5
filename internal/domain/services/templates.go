package services

// TemplateRegistry maps short command names to parameterized command
// templates. It is a convenience layer, never a validation gate: a name
// without a registered template is itself a literal template.
type TemplateRegistry struct {
	templates map[string]string
}

// NewTemplateRegistry creates a registry over the given name -> template map
func NewTemplateRegistry(templates map[string]string) *TemplateRegistry {
	copied := make(map[string]string, len(templates))
	for name, tmpl := range templates {
		copied[name] = tmpl
	}
	return &TemplateRegistry{templates: copied}
}

// Register adds or replaces a named template
func (r *TemplateRegistry) Register(name, template string) {
	r.templates[name] = template
}

// Resolve returns the registered template for a short name, or the input
// unchanged when no registration exists.
func (r *TemplateRegistry) Resolve(nameOrTemplate string) string {
	if tmpl, ok := r.templates[nameOrTemplate]; ok {
		return tmpl
	}
	return nameOrTemplate
}

// DefaultCommandTemplates returns the built-in analyzer command templates.
// Both drive the abcoder parser over the job's pinned checkout; jedi swaps
// the default language server for jedi-language-server.
func DefaultCommandTemplates() map[string]string {
	return map[string]string{
		"pylsp": "./abcoder parse python {repo_path} -verbose -o {outdir}/{instance_id}.json -include {include_path} -lsp-cache-path {outdir}/{instance_id}/lsp_cache.json",
		"jedi":  "./abcoder parse python {repo_path} -verbose -o {outdir}/{instance_id}.json -include {include_path} -lsp-cache-path {outdir}/{instance_id}/lsp_cache.json -lsp jedi-language-server -lsp-flags '--log-file {outdir}/{instance_id}/lsp.log -v'",
	}
}
