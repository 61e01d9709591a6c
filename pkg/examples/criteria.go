package examples

func basicExamples() []Example {
	return []Example{
		{
			Name:        "Single Product",
			Filename:    "example-single-product.yaml",
			Description: "Every standard test run set of one product, unprefixed",
			Content: `# Every standard test run set of one product.
criteria:
  - products: [my-product]
    statuses: [Standard]
`,
		},
		{
			Name:        "Tagged Runs",
			Filename:    "example-tagged-runs.yaml",
			Description: "Test run sets carrying all of a set of tags, across products",
			Content: `# Matches need every listed tag. Tags compare case-insensitively.
criteria:
  - prefix: tagged
    tags: [regression, nightly]
`,
		},
	}
}

func releaseExamples() []Example {
	return []Example{
		{
			Name:        "Release Candidate",
			Filename:    "example-release-candidate.yaml",
			Description: "CI runs of two services plus the overnight smoke tests",
			Content: `# Each entry is searched independently, in order. Every match becomes a
# source labelled with the entry's prefix.
count: 3
criteria:
  - index: 0
    prefix: ci-orders
    products: [orders]
    name: "Build 1.2"
  - index: 1
    prefix: ci-billing
    products: [billing]
    name: "Build 1.2"
  - index: 2
    prefix: smoke
    tags: [smoke]
    statuses: [Standard, Locked]
`,
		},
	}
}

func dateExamples() []Example {
	return []Example{
		{
			Name:        "Run Date Window",
			Filename:    "example-run-date-window.yaml",
			Description: "Test run sets run inside a fixed window, with explicit date formats",
			Content: `# Dates given with a format and no offset are taken as UTC. Without a
# format most common layouts are accepted.
criteria:
  - prefix: window
    products: [my-product]
    minRunDate: "01/01/2024 00:00"
    minRunDateFormat: dd/MM/yyyy HH:mm
    maxRunDate: "31/01/2024 23:59"
    maxRunDateFormat: dd/MM/yyyy HH:mm
  - prefix: baseline
    products: [my-product]
    maxRefDate: "2023-12-31"
`,
		},
	}
}
