package config

// BridgeConfigTemplate is used by deployment tooling to render a node's config file.
const BridgeConfigTemplate = `db_host = "{{ .DbHost }}"
db_port = {{ .DbPort }}
db_username = "{{ .DbUsername }}"
db_password = "{{ .DbPassword }}"
db_schema = "{{ .DbSchema }}"

server_port = {{ .ServerPort }}
relay_url = "{{ .RelayUrl }}"

[chains]{{ range $k, $v := .Chains }}
	[chains.{{ $k }}]
	chain = "{{ $k }}"
	chain_id = {{ $v.ChainId }}
	chain_selector = {{ $v.ChainSelector }}
	rpcs = [{{ range $v.Rpcs }}"{{ . }}", {{ end }}]
	nft = "{{ $v.Nft }}"
	fee_token = "{{ $v.FeeToken }}"
	router = "{{ $v.Router }}"
	bridge_account = "{{ $v.BridgeAccount }}"
	gas_limit = {{ $v.GasLimit }}
{{ end }}
`
