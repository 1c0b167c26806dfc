// Package markdown renders classified elements and detected tables as
// Markdown fragments, and provides the whole-document cleanup pass.
//
// The [Renderer] converts one page's elements into a Markdown fragment,
// applying inline styling (bold, italic, underline) before block templates.
// The [PostProcessor] then runs once over the concatenated document:
// renumbering ordered lists, merging soft-wrapped lines, and collapsing
// runs of blank lines. The post-process pass is idempotent.
package markdown
