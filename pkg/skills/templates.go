package skills

import (
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

// templateData carries the substitutions available to the scaffold
// templates.
type templateData struct {
	Name  string // exact identifier, written into the name: field
	Title string // title-cased form for prose headings
}

const skillDocTemplate = `---
name: {{.Name}}
description: [TODO: Complete and informative explanation of what the skill does and when to use it. Include WHEN to use this skill - specific scenarios, file types, or tasks that trigger it.]
---

# {{.Title}}

## Overview

[TODO: 1-2 sentences explaining what this skill enables]

## Structuring This Skill

[TODO: Choose the structure that best fits this skill's purpose. Common patterns:

**1. Workflow-Based** (best for sequential processes)
- Works well when there are clear step-by-step procedures
- Example: Document processing with "Analyze" -> "Extract" -> "Validate" -> "Report"
- Structure: ## Overview -> ## Workflow -> ## Step 1 -> ## Step 2...

**2. Task-Based** (best for tool collections)
- Works well when the skill offers different operations/capabilities
- Example: PDF skill with "Merge PDFs" -> "Split PDFs" -> "Extract Text"
- Structure: ## Overview -> ## Quick Start -> ## Task Category 1 -> ## Task Category 2...

**3. Reference/Guidelines** (best for standards or specifications)
- Works well for brand guidelines, coding standards, or requirements
- Structure: ## Overview -> ## Guidelines -> ## Specifications -> ## Usage...

**4. Capabilities-Based** (best for integrated systems)
- Works well when the skill provides multiple interrelated features
- Structure: ## Overview -> ## Core Capabilities -> ### 1. Feature -> ### 2. Feature...

Patterns can be mixed and matched. Most skills combine patterns.

Delete this entire "Structuring This Skill" section when done - it's just guidance.]

## Resources

This skill includes example resource directories. Customize or delete as needed:

### scripts/
Executable helpers for deterministic operations.
- See ` + "`scripts/example.sh`" + ` for a starter template
- **When to use:** Math, file parsing, API calls, automation

### references/
Documentation loaded into context to inform the agent's thinking.
- See ` + "`references/example-reference.md`" + ` for structure suggestions
- **When to use:** API docs, schemas, detailed guides, domain knowledge
- **Tip:** For large files (>10k words), mention grep patterns in this SKILL.md

### assets/
Files used in output (templates, images, fonts) - NOT loaded into context.
- See ` + "`assets/README.md`" + ` for explanation
- **When to use:** Boilerplate code, templates, images, fonts

**Delete any unneeded directories.** Not every skill requires all three.

## [TODO: Replace with your main section]

[TODO: Add your skill's core content here. Consider:
- Code samples for technical skills
- Decision trees for complex workflows
- Concrete examples with realistic user requests
- References to scripts/templates/references as needed]

## Next Steps

After creating this skill:
1. Complete all TODO items in this file
2. Update the description to be specific and keyword-rich
3. Customize or delete example files in scripts/, references/, and assets/
4. Run validation: ` + "`skillet validate --path <path-to>/{{.Name}}`" + `
5. Test the skill with real use cases and iterate based on feedback
`

const exampleScriptTemplate = `#!/usr/bin/env bash
#
# Example helper script for {{.Name}}
#
# This is a placeholder demonstrating how to structure executable helpers.
# Replace with actual implementation or delete if not needed.
#
# Example real helpers from other skills:
# - Data processing: parse CSV, transform JSON, aggregate results
# - File operations: convert formats, merge files, validate structure
# - API interaction: fetch data, authenticate, handle rate limits
#
# Usage:
#   scripts/example.sh [arg]

set -euo pipefail

echo "Example helper executed for {{.Name}}"
echo "Argument: ${1:-<none>}"

# TODO: Add actual helper logic here
`

const exampleReferenceTemplate = `# Reference Documentation for {{.Title}}

This is a placeholder for detailed reference documentation.
Replace with actual reference content or delete if not needed.

## When Reference Docs Are Useful

Reference docs are ideal for:
- **Comprehensive guides** - Multi-page documentation that would bloat SKILL.md
- **API documentation** - Endpoint specifications, parameters, examples
- **Schemas** - Database schemas, data models, type definitions
- **Domain knowledge** - Company policies, industry standards, legal templates
- **Detailed workflows** - Step-by-step procedures

## Tips for Large Reference Files

If this file will be long:
- Include a table of contents at the top
- Use clear section headers
- Add grep hints in the main SKILL.md for easier navigation

## Best Practices

Do:
- Keep SKILL.md lean, move details here
- Use tables for structured data
- Include concrete examples

Don't:
- Duplicate content from SKILL.md
- Create reference docs for a handful of lines (put them in SKILL.md)
- Forget to mention this file exists in SKILL.md
`

const assetsReadme = `# Assets Directory

This directory contains files that are **used in output** - NOT loaded into context.

## What Goes Here?

- **Templates**: document templates, code boilerplate, configuration templates
- **Visual assets**: logos, icons, diagrams
- **Fonts**: typography files for document generation
- **Data files**: sample datasets, test fixtures, seed data

## What Does NOT Go Here?

- Documentation -> use references/ instead
- Executable helpers -> use scripts/ instead
- Instructions -> put them in SKILL.md

## How Agents Use Assets

Agents typically copy an asset to a new location, modify it based on user
input (fill template fields, replace placeholders) and return the modified
file. Assets are never loaded into context.

Remove this README if the skill does not use assets.
`

func renderTemplate(name, text string, data templateData) (string, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse %s template", name)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", errors.Wrapf(err, "failed to render %s template", name)
	}
	return sb.String(), nil
}
