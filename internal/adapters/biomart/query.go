package biomart

import (
	"fmt"
	"strings"
)

// queryTemplate is the martservice XML query envelope. TSV output with a
// header row and uniqueRows keeps the response small and parseable.
const queryTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE Query>
<Query  virtualSchemaName = "default" formatter = "TSV" header = "1" uniqueRows = "1" datasetConfigVersion = "0.6" >

	<Dataset name = "%s" interface = "default" >
        %s
    </Dataset>
</Query>`

// buildQuery renders the XML query requesting the given attributes from
// the dataset.
func buildQuery(dataset string, attributes []string) string {
	lines := make([]string, len(attributes))
	for i, attr := range attributes {
		lines[i] = fmt.Sprintf(`<Attribute name = "%s" />`, attr)
	}
	return fmt.Sprintf(queryTemplate, dataset, strings.Join(lines, "\n"))
}
