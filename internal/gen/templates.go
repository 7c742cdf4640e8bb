package gen

import "text/template"

var odinFuncs = template.FuncMap{
	"q":    odinString,
	"list": odinList,
	"bool": odinBool,
	"inc":  func(i int) int { return i + 1 },
}

var schemaTemplate = template.Must(template.New("schema").Funcs(odinFuncs).Parse(`-- Generated by {{.Generator}}. Do not edit.

------------------------------------------------------
-- BMM version on which these schemas are based.
------------------------------------------------------
bmm_version = <{{q .BMMVersion}}>

------------------------------------------------------
-- schema identification
------------------------------------------------------
rm_publisher = <{{q .Schema.RMPublisher}}>
schema_name = <{{q .Schema.SchemaName}}>
rm_release = <{{q .Schema.RMRelease}}>

------------------------------------------------------
-- schema documentation
------------------------------------------------------
schema_revision = <{{q .Schema.SchemaRevision}}>
schema_lifecycle_state = <{{q .Schema.SchemaLifecycleState}}>
schema_description = <{{q .Schema.SchemaDescription}}>
{{- if .Schema.Includes}}

------------------------------------------------------
-- includes
------------------------------------------------------
includes = <
{{- range $i, $inc := .Schema.Includes}}
	["{{inc $i}}"] = <
		id = <{{q $inc.ID}}>
	>
{{- end}}
>
{{- end}}
{{- with .Container}}

------------------------------------------------------
-- packages
------------------------------------------------------
packages = <
	[{{q .Name}}] = <
		name = <{{q .Name}}>
{{- if .Packages}}
		packages = <
{{- range .Packages}}
			[{{q .Name}}] = <
				name = <{{q .Name}}>
{{- if .Documentation}}
				documentation = <{{q .Documentation}}>
{{- end}}
{{- if .Classes}}
				classes = <{{list .Classes}}>
{{- end}}
			>
{{- end}}
		>
{{- end}}
	>
>
{{- end}}
{{- if .Schema.ArchetypeRMClosurePackages}}

archetype_rm_closure_packages = <{{list .Schema.ArchetypeRMClosurePackages}}>
{{- end}}
{{- if .Primitives}}

------------------------------------------------------
-- primitive types
------------------------------------------------------
primitive_types = <
{{- range .Primitives}}{{template "class" .}}{{end}}
>
{{- end}}
{{- if .Classes}}

------------------------------------------------------
-- classes
------------------------------------------------------
class_definitions = <
{{- range .Classes}}{{template "class" .}}{{end}}
>
{{- end}}
`))

var _ = template.Must(schemaTemplate.New("class").Parse(`
	[{{q .Name}}] = <
		name = <{{q .Name}}>
{{- if .Documentation}}
		documentation = <{{q .Documentation}}>
{{- end}}
{{- if .Abstract}}
		is_abstract = <{{bool .Abstract}}>
{{- end}}
{{- if .Ancestors}}
		ancestors = <{{list .Ancestors}}>
{{- end}}
{{- if .Parameters}}
		generic_parameter_defs = <
{{- range .Parameters}}
			[{{q .Name}}] = <
				name = <{{q .Name}}>
{{- if .ConformsToType}}
				conforms_to_type = <{{q .ConformsToType}}>
{{- end}}
			>
{{- end}}
		>
{{- end}}
{{- if .Properties}}
		properties = <
{{- range .Properties}}{{template "property" .}}{{end}}
		>
{{- end}}
	>`))

var _ = template.Must(schemaTemplate.New("property").Parse(`
			[{{q .Name}}] = ({{.Kind}}) <
				name = <{{q .Name}}>
{{- if .Documentation}}
				documentation = <{{q .Documentation}}>
{{- end}}
{{- if .Type}}
				type = <{{q .Type}}>
{{- else if .ContainerType}}
				type_def = <
					container_type = <{{q .ContainerType}}>
{{- if .ElementGeneric}}
					type_def = (P_BMM_GENERIC_TYPE) <
						root_type = <{{q .RootType}}>
						generic_parameters = <{{list .Parameters}}>
					>
{{- else}}
					type = <{{q .ElementType}}>
{{- end}}
				>
{{- else if .RootType}}
				type_def = <
					root_type = <{{q .RootType}}>
					generic_parameters = <{{list .Parameters}}>
				>
{{- end}}
{{- if .Mandatory}}
				is_mandatory = <True>
{{- end}}
{{- if .Cardinality}}
				cardinality = <{{.Cardinality}}>
{{- end}}
			>`))
